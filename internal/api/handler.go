// Package api exposes the statement conversion pipeline over HTTP: upload
// one statement PDF, get the normalized ledger back as JSON plus its CSV
// serialization.
package api

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/bill-ledger/internal/extractor"
	"github.com/insightdelivered/bill-ledger/internal/models"
	"github.com/insightdelivered/bill-ledger/internal/parser"
	"github.com/insightdelivered/bill-ledger/internal/writer"
)

// ConvertResponse is the JSON response from POST /api/convert.
type ConvertResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	Vendor       string               `json:"vendor,omitempty"`
	Count        int                  `json:"count"`
	Transactions []models.Transaction `json:"transactions"`
	CSV          string               `json:"csv,omitempty"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:             32 << 20,
		DisableStartupMessage: true,
	})
	app.Get("/api/health", HandleHealth)
	app.Post("/api/convert", HandleConvert)
	return app
}

func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "fiber",
	})
}

// HandleConvert accepts a multipart form with a "statement" PDF, a
// "vendor" layout id and an optional "account" name, and runs the full
// pipeline on it.
func HandleConvert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("statement")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "missing statement file")
	}

	vendorID := models.VendorID(c.FormValue("vendor"))
	v, err := parser.New(vendorID)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}

	account := c.FormValue("account")
	if account == "" {
		account = "uploaded"
	}

	// The PDF library needs a file on disk.
	tmpDir, err := os.MkdirTemp("", "bill-ledger")
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "temp dir unavailable")
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, filepath.Base(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return writeError(c, fiber.StatusInternalServerError, "could not save upload")
	}

	pages, err := extractor.ExtractText(tmpPath)
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("extraction failed: %v", err))
	}

	ctx := models.StatementContext{AccountName: account, FileName: fileHeader.Filename}
	txns, err := parser.ParseStatement(v, ctx, pages)
	if err != nil {
		slog.Warn("statement parse failed", "vendor", vendorID, "file", fileHeader.Filename, "err", err)
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var csvBuf bytes.Buffer
	if err := writer.Write(&csvBuf, txns); err != nil {
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(ConvertResponse{
		Success:      true,
		Vendor:       v.VendorName(),
		Count:        len(txns),
		Transactions: txns,
		CSV:          csvBuf.String(),
	})
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.Transaction{},
	})
}
