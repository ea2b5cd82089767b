package config

// Defaults for the content API and local tooling
const (
	// DefaultCMSBaseURL is where the content API listens during development
	DefaultCMSBaseURL = "http://localhost:1337"

	// DefaultTemplatePath is the page template rendered by the preview command
	DefaultTemplatePath = "./web/index.html"

	// DefaultMockDatabasePath stores contact messages received by the mock content API
	DefaultMockDatabasePath = "./mock-cms.db"
)

// Image placeholders substituted when a record carries no image reference
const (
	DefaultPortfolioPlaceholder = "https://via.placeholder.com/300x200/8D6E63/F8F4F0?text=Portfolio+Item"
	DefaultCategoryPlaceholder  = "https://via.placeholder.com/300x200/8D6E63/F8F4F0?text=Categoria"
	DefaultBlogPlaceholder      = "https://via.placeholder.com/400x250/8D6E63/F8F4F0?text=Blog+Post"
	DefaultSocialPlaceholder    = "https://via.placeholder.com/64x64/8D6E63/FFFFFF?text=?"
)
