package main

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"what-to-watch-backend/internal/config"
	"what-to-watch-backend/internal/database"
	"what-to-watch-backend/internal/database/models"
	"what-to-watch-backend/internal/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Seeds the opinions table from a CSV file. Each row is
// title,text[,source[,added_by]]; rows whose text already exists are skipped.
//
// Usage: go run scripts/load_opinions.go [opinions.csv]
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	path := "opinions.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file, err := os.Open(path)
	if err != nil {
		logrus.Fatal("Failed to open CSV file: ", err)
	}
	defer file.Close()

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	repo := repository.NewOpinionRepository(db)

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var loaded, skipped int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logrus.Fatal("Failed to read CSV record: ", err)
		}
		if len(record) < 2 {
			logrus.Warnf("Skipping malformed row: %v", record)
			skipped++
			continue
		}

		opinion := &models.Opinion{
			Title: strings.TrimSpace(record[0]),
			Text:  strings.TrimSpace(record[1]),
		}
		if opinion.Title == "" || opinion.Text == "" {
			logrus.Warnf("Skipping row with empty title or text: %v", record)
			skipped++
			continue
		}
		if len(record) > 2 && strings.TrimSpace(record[2]) != "" {
			source := strings.TrimSpace(record[2])
			opinion.Source = &source
		}
		if len(record) > 3 && strings.TrimSpace(record[3]) != "" {
			addedBy := strings.TrimSpace(record[3])
			opinion.AddedBy = &addedBy
		}

		exists, err := repo.ExistsByText(opinion.Text, 0)
		if err != nil {
			logrus.Fatal("Failed to check for duplicate text: ", err)
		}
		if exists {
			skipped++
			continue
		}

		if err := repo.Create(opinion); err != nil {
			logrus.Fatal("Failed to insert opinion: ", err)
		}
		loaded++
	}

	logrus.Infof("Done: %d opinions loaded, %d skipped", loaded, skipped)
}
