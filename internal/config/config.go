package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		CMS
		Placeholders
		Content
		UI
		Template
		MockCMS
	}

	CMS struct {
		BaseURL      string
		MediaBaseURL string        // Host prefixed to relative media URLs
		Timeout      time.Duration // Zero means requests never time out
	}
	Placeholders struct {
		Portfolio string
		Category  string
		Blog      string
		Social    string
	}
	Content struct {
		Locale       string // BCP 47 tag used for dates, e.g. "it-IT"
		AllowRawHTML bool   // Trust HTML in rich text and skip sanitizing it
		OwnerName    string // Fallback alt text for the about image
	}
	UI struct {
		MenuBreakpoint       int     // Viewport width above which the mobile menu is forced closed
		HeaderOffset         float64 // Subtracted from smooth scroll targets
		ActiveSectionOffset  float64 // Subtracted from section tops when highlighting nav links
		HeaderScrolledAt     float64
		BackToTopVisibleAt   float64
		ScrollDuration       time.Duration
		NavScrollDelay       time.Duration
		LightboxCloseDelay   time.Duration
		ArticleCloseDelay    time.Duration
		NotificationShowWait time.Duration
		NotificationLifetime time.Duration
	}
	Template struct {
		Path string
	}
	MockCMS struct {
		Host            string
		Port            int32
		DatabasePath    string
		FixturesPath    string
		ShutdownTimeout time.Duration
		ContactLimit    int // Contact submissions allowed per client IP and window
		ContactWindow   time.Duration

		// Messages older than Retention are purged on RetentionSchedule; zero keeps them
		Retention         time.Duration
		RetentionSchedule string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("cms_base_url", DefaultCMSBaseURL)
	v.SetDefault("cms_media_base_url", "")
	v.SetDefault("cms_timeout", "0s")

	v.SetDefault("placeholder_portfolio", DefaultPortfolioPlaceholder)
	v.SetDefault("placeholder_category", DefaultCategoryPlaceholder)
	v.SetDefault("placeholder_blog", DefaultBlogPlaceholder)
	v.SetDefault("placeholder_social", DefaultSocialPlaceholder)

	v.SetDefault("locale", "it-IT")
	v.SetDefault("allow_raw_html", false)
	v.SetDefault("owner_name", "Donato Pastrello")

	// Values mirror the stylesheet transitions and breakpoints
	v.SetDefault("menu_breakpoint", 768)
	v.SetDefault("header_offset", 80)
	v.SetDefault("active_section_offset", 120)
	v.SetDefault("header_scrolled_at", 100)
	v.SetDefault("back_to_top_visible_at", 500)
	v.SetDefault("scroll_duration", "1s")
	v.SetDefault("nav_scroll_delay", "300ms")
	v.SetDefault("lightbox_close_delay", "300ms")
	v.SetDefault("article_close_delay", "400ms")
	v.SetDefault("notification_show_wait", "100ms")
	v.SetDefault("notification_lifetime", "5s")

	v.SetDefault("template_path", DefaultTemplatePath)

	v.SetDefault("mock_cms_host", "127.0.0.1")
	v.SetDefault("mock_cms_port", 1337)
	v.SetDefault("mock_cms_database_path", DefaultMockDatabasePath)
	v.SetDefault("mock_cms_fixtures", "")
	v.SetDefault("mock_cms_shutdown_timeout", "5s")
	v.SetDefault("mock_cms_contact_limit", 5)
	v.SetDefault("mock_cms_contact_window", "1m")
	v.SetDefault("mock_cms_retention", "720h")
	v.SetDefault("mock_cms_retention_schedule", "0 3 * * *")

	baseURL := v.GetString("CMS_BASE_URL")
	mediaBaseURL := v.GetString("CMS_MEDIA_BASE_URL")
	if mediaBaseURL == "" {
		mediaBaseURL = baseURL
	}

	return &Config{
		CMS: CMS{
			BaseURL:      baseURL,
			MediaBaseURL: mediaBaseURL,
			Timeout:      v.GetDuration("CMS_TIMEOUT"),
		},
		Placeholders: Placeholders{
			Portfolio: v.GetString("PLACEHOLDER_PORTFOLIO"),
			Category:  v.GetString("PLACEHOLDER_CATEGORY"),
			Blog:      v.GetString("PLACEHOLDER_BLOG"),
			Social:    v.GetString("PLACEHOLDER_SOCIAL"),
		},
		Content: Content{
			Locale:       v.GetString("LOCALE"),
			AllowRawHTML: v.GetBool("ALLOW_RAW_HTML"),
			OwnerName:    v.GetString("OWNER_NAME"),
		},
		UI: UI{
			MenuBreakpoint:       v.GetInt("MENU_BREAKPOINT"),
			HeaderOffset:         v.GetFloat64("HEADER_OFFSET"),
			ActiveSectionOffset:  v.GetFloat64("ACTIVE_SECTION_OFFSET"),
			HeaderScrolledAt:     v.GetFloat64("HEADER_SCROLLED_AT"),
			BackToTopVisibleAt:   v.GetFloat64("BACK_TO_TOP_VISIBLE_AT"),
			ScrollDuration:       v.GetDuration("SCROLL_DURATION"),
			NavScrollDelay:       v.GetDuration("NAV_SCROLL_DELAY"),
			LightboxCloseDelay:   v.GetDuration("LIGHTBOX_CLOSE_DELAY"),
			ArticleCloseDelay:    v.GetDuration("ARTICLE_CLOSE_DELAY"),
			NotificationShowWait: v.GetDuration("NOTIFICATION_SHOW_WAIT"),
			NotificationLifetime: v.GetDuration("NOTIFICATION_LIFETIME"),
		},
		Template: Template{
			Path: v.GetString("TEMPLATE_PATH"),
		},
		MockCMS: MockCMS{
			Host:            v.GetString("MOCK_CMS_HOST"),
			Port:            v.GetInt32("MOCK_CMS_PORT"),
			DatabasePath:    v.GetString("MOCK_CMS_DATABASE_PATH"),
			FixturesPath:    v.GetString("MOCK_CMS_FIXTURES"),
			ShutdownTimeout: v.GetDuration("MOCK_CMS_SHUTDOWN_TIMEOUT"),
			ContactLimit:    v.GetInt("MOCK_CMS_CONTACT_LIMIT"),
			ContactWindow:   v.GetDuration("MOCK_CMS_CONTACT_WINDOW"),

			Retention:         v.GetDuration("MOCK_CMS_RETENTION"),
			RetentionSchedule: v.GetString("MOCK_CMS_RETENTION_SCHEDULE"),
		},
	}
}
