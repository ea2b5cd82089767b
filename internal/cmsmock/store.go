package cmsmock

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/portfolio/internal/entities"
)

// Store keeps the contact messages received by the mock API.
type Store struct {
	DB *gorm.DB
}

func NewStore(dbPath string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.ContactMessage{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Mock CMS: message store initialized at %s", dbPath)
	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateMessage stores a submission under a fresh document id.
func (s *Store) CreateMessage(form entities.ContactForm) (*entities.ContactMessage, error) {
	message := &entities.ContactMessage{
		DocumentID:  uuid.NewString(),
		ContactForm: form,
	}
	if err := s.DB.Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	return message, nil
}

// Messages returns stored submissions, newest first.
func (s *Store) Messages() ([]entities.ContactMessage, error) {
	var messages []entities.ContactMessage
	err := s.DB.Order("created_at desc, id desc").Find(&messages).Error
	return messages, err
}

// DeleteMessagesBefore removes submissions created before cutoff.
func (s *Store) DeleteMessagesBefore(cutoff time.Time) (int64, error) {
	result := s.DB.Where("created_at < ?", cutoff).Delete(&entities.ContactMessage{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete contact messages: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Ping checks the underlying connection.
func (s *Store) Ping() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
