// Package seed creates the initial admin account and the first post.
package seed

import (
	"errors"
	"fmt"

	"bramble/app/auth"
	"bramble/app/config"
	"bramble/app/models"
	"bramble/app/repositories"

	"go.uber.org/zap"
)

const (
	firstPostTitle    = "The Life of Cactus"
	firstPostSubtitle = "Who knew that cacti lived such interesting lives."
	firstPostDate     = "October 20, 2020"
	firstPostImgURL   = "https://images.unsplash.com/photo-1530482054429-cc491f61333b"
	firstPostBody     = `<p>Nori grape silver beet broccoli kombu beet greens fava bean potato quandong celery.</p>

<p>Bunya nuts black-eyed pea prairie turnip leek lentil turnip greens parsnip.</p>

<p>Sea lettuce lettuce water chestnut eggplant winter purslane fennel azuki bean earthnut pea sierra leone bologi leek soko chicory celtuce parsley.</p>`
)

// Run seeds the store with the configured admin account and a first post
// authored by it. Running against an already-seeded store is a no-op for
// the pieces that exist.
func Run(cfg *config.Config, users repositories.UserRepository, posts repositories.PostRepository, logger *zap.Logger) error {
	if cfg.AdminPassword == "" {
		return errors.New("BLOG_ADMIN_PASSWORD must be set to seed the admin account")
	}

	admin, err := users.GetByEmail(cfg.AdminEmail)
	switch {
	case err == nil:
		logger.Info("admin account already exists", zap.String("email", cfg.AdminEmail))
	case errors.Is(err, repositories.ErrNotFound):
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("hashing admin password: %w", err)
		}
		admin = &models.User{
			Name:         cfg.AdminName,
			Email:        cfg.AdminEmail,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
		}
		admin.BeforeCreate()
		if err := users.Create(admin); err != nil {
			return fmt.Errorf("creating admin account: %w", err)
		}
		logger.Info("created admin account", zap.String("email", admin.Email), zap.Int("id", admin.ID))
	default:
		return err
	}

	post := &models.Post{
		Title:    firstPostTitle,
		Subtitle: firstPostSubtitle,
		Date:     firstPostDate,
		Body:     firstPostBody,
		ImgURL:   firstPostImgURL,
		AuthorID: admin.ID,
	}
	post.BeforeCreate()
	if err := posts.Create(post); err != nil {
		if errors.Is(err, repositories.ErrDuplicateTitle) {
			logger.Info("first post already exists", zap.String("title", firstPostTitle))
			return nil
		}
		return fmt.Errorf("creating first post: %w", err)
	}
	logger.Info("created first post", zap.String("title", post.Title), zap.Int("id", post.ID))

	return nil
}
