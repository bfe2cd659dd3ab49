package repository

import (
	"context"
	"fmt"
	"os"

	"go_study_sheet/internal/config"
	"go_study_sheet/internal/model"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetValuesAPI は Sheets API の values リソースのうち、このアプリが使う部分です
type SheetValuesAPI interface {
	Get(ctx context.Context, a1Range string) ([][]interface{}, error)
	Append(ctx context.Context, a1Range string, rows [][]interface{}) error
	Update(ctx context.Context, a1Range string, rows [][]interface{}) error
}

// NewSheetsService はサービスアカウントの認証情報で Sheets クライアントを作ります。
// 認証情報が設定されていなければ Application Default Credentials を使う
func NewSheetsService(ctx context.Context, cfg config.SheetsConfig, opts ...option.ClientOption) (*sheets.Service, error) {
	credJSON := []byte(cfg.CredentialsJSON)
	if len(credJSON) == 0 && cfg.CredentialsFile != "" {
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file %s: %w", cfg.CredentialsFile, err)
		}
		credJSON = b
	}

	if len(credJSON) > 0 {
		creds, err := google.CredentialsFromJSON(ctx, credJSON, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("parse service account credentials: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return srv, nil
}

type googleSheetValues struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewGoogleSheetValues(svc *sheets.Service, spreadsheetID string) SheetValuesAPI {
	return &googleSheetValues{svc: svc, spreadsheetID: spreadsheetID}
}

func (g *googleSheetValues) Get(ctx context.Context, a1Range string) ([][]interface{}, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, a1Range).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets values.get %s: %w: %w", a1Range, model.ErrStoreUnavailable, err)
	}
	return resp.Values, nil
}

func (g *googleSheetValues) Append(ctx context.Context, a1Range string, rows [][]interface{}) error {
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, a1Range, &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets values.append %s: %w: %w", a1Range, model.ErrStoreUnavailable, err)
	}
	return nil
}

func (g *googleSheetValues) Update(ctx context.Context, a1Range string, rows [][]interface{}) error {
	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, a1Range, &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets values.update %s: %w: %w", a1Range, model.ErrStoreUnavailable, err)
	}
	return nil
}
