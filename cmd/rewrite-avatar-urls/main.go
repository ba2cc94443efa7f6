// One-off migration: rewrites the profile picture URLs of all users after PUBLIC_URL or BASE_PATH
// changed. Run with -dry-run first, then without to apply.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fairfinder/fair-finder/pkg/config"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/fairfinder/fair-finder/pkg/storage"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var errDryRun = errors.New("dry run rollback")

func main() {
	from := flag.String("from", "", "URL prefix to replace, e.g. http://old-host:8081")
	to := flag.String("to", "", "URL prefix to replace it with, e.g. https://fairfinder.example.org")
	dryRun := flag.Bool("dry-run", false, "Log planned updates and do not commit")
	flag.Parse()

	if *from == "" || *to == "" {
		fmt.Fprintf(os.Stderr, "missing -from or -to\n")
		os.Exit(1)
	}

	logger := slog.Default()

	_ = godotenv.Load()
	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to read configuration", "error", err)
		os.Exit(1)
	}

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	count, err := rewrite(db, *from, *to, *dryRun, logger)
	if err != nil {
		if *dryRun && errors.Is(err, errDryRun) {
			// Rollback was intentional
		} else {
			logger.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	if *dryRun {
		logger.Info("dry run: rolled back (no changes made)", "count", count)
	} else {
		logger.Info("migration completed", "count", count)
	}
}

// rewrite replaces the from prefix of every matching profile picture URL with to. It returns the
// number of users whose URL changed.
func rewrite(db *gorm.DB, from, to string, dryRun bool, logger *slog.Logger) (int, error) {
	from = strings.TrimSuffix(from, "/")
	to = strings.TrimSuffix(to, "/")

	count := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		var users []model.User
		err := tx.
			Select("id", "profile_picture").
			Where("profile_picture LIKE ?", escapeLike(from)+"/%").
			Order("id").
			Find(&users).Error
		if err != nil {
			return err
		}

		for _, user := range users {
			url, ok := rewriteURL(*user.ProfilePicture, from, to)
			if !ok {
				continue
			}

			logger.Info("rewrite", "user_id", user.ID, "from", *user.ProfilePicture, "to", url)
			res := tx.Model(&model.User{}).
				Where("id = ?", user.ID).
				Update("profile_picture", url)
			if res.Error != nil {
				return res.Error
			}
			count++
		}

		if dryRun {
			return errDryRun
		}
		return nil
	})
	return count, err
}

func rewriteURL(url, from, to string) (string, bool) {
	rest, found := strings.CutPrefix(url, from+"/")
	if !found {
		return "", false
	}
	return to + "/" + rest, true
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
