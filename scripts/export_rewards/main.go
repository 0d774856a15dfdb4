// Command export_rewards writes an Excel workbook with the point ledger and
// the current leaderboard, for community admins.
//
// Usage: go run ./scripts/export_rewards [-out rewards.xlsx] [-ledger-limit 5000]
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/matchahub/matcha_hub/internal/config"
	"github.com/matchahub/matcha_hub/internal/database"
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/logger"
	"github.com/xuri/excelize/v2"
)

func main() {
	out := flag.String("out", "rewards.xlsx", "output file path")
	ledgerLimit := flag.Int("ledger-limit", 5000, "max ledger rows to export")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	// Ledger sheet
	ledgerSheet := "Point Ledger"
	f.SetSheetName("Sheet1", ledgerSheet)
	headers := []string{"ID", "User ID", "Username", "Amount", "Type", "Description", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ledgerSheet, cell, h)
	}

	var entries []models.PointTransaction
	err = db.Preload("User").
		Order("created_at DESC").
		Limit(*ledgerLimit).
		Find(&entries).Error
	if err != nil {
		logger.Fatal("Failed to load ledger", err)
	}

	for i, entry := range entries {
		row := i + 2
		f.SetCellValue(ledgerSheet, fmt.Sprintf("A%d", row), entry.ID)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("B%d", row), entry.UserID)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("C%d", row), entry.User.Username)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("D%d", row), entry.Amount)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("E%d", row), entry.TransactionType)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("F%d", row), entry.Description)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("G%d", row), entry.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	// Leaderboard sheet
	boardSheet := "Leaderboard"
	if _, err := f.NewSheet(boardSheet); err != nil {
		logger.Fatal("Failed to create sheet", err)
	}
	boardHeaders := []string{"Rank", "Username", "Display Name", "Points"}
	for i, h := range boardHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(boardSheet, cell, h)
	}

	var users []models.User
	err = db.Order("points DESC").Limit(100).Find(&users).Error
	if err != nil {
		logger.Fatal("Failed to load leaderboard", err)
	}

	for i, user := range users {
		row := i + 2
		f.SetCellValue(boardSheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(boardSheet, fmt.Sprintf("B%d", row), user.Username)
		f.SetCellValue(boardSheet, fmt.Sprintf("C%d", row), user.DisplayName)
		f.SetCellValue(boardSheet, fmt.Sprintf("D%d", row), user.Points)
	}

	if err := f.SaveAs(*out); err != nil {
		logger.Fatal("Failed to save workbook", err)
	}
	logger.Info("Export complete", "file", *out, "ledger_rows", len(entries), "leaderboard_rows", len(users))
}
