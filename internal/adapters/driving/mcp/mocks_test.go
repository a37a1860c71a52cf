package mcp

import (
	"context"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
)

// mockLoader is a mock implementation of driving.SaveLoader.
type mockLoader struct {
	result *domain.LoadResult
	err    error
}

func (m *mockLoader) Load(_ context.Context, path string, _ driving.LoadObserver) (*domain.LoadResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := *m.result
	result.ArchivePath = path
	return &result, nil
}

// mockWriter is a mock implementation of driving.SaveWriter.
type mockWriter struct {
	requests []driving.SaveRequest
	result   *domain.SaveResult
	err      error
}

func (m *mockWriter) Save(_ context.Context, req driving.SaveRequest, _ driving.SaveObserver) (*domain.SaveResult, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func uint64Ptr(v uint64) *uint64 { return &v }

func testLoadResult() *domain.LoadResult {
	return &domain.LoadResult{
		Header: domain.Header{Name: "Drezen Siege", CompatibilityVersion: 3},
		Player: domain.Player{
			ID:    "1",
			Money: 1500,
			Kingdom: &domain.Kingdom{
				ID:               "40",
				Resources:        domain.KingdomResources{ID: "41", Finances: 10, Materials: 20, Favors: 30, Mana: 40},
				ResourcesPerTurn: domain.KingdomResources{ID: "42", Finances: 1},
			},
		},
		Party: domain.Party{Characters: []domain.Character{
			{
				ID:               "2",
				Name:             "Seelah",
				Blueprint:        "54be53f0b35bf3c4592a97ae335fe765",
				Experience:       1000,
				MythicExperience: uint64Ptr(5),
				Stats: []domain.Stat{
					{ID: "6", Type: "Strength", BaseValue: uint64Ptr(16)},
					{ID: "7", Type: "AC"},
				},
			},
			{ID: "9", Blueprint: "397b090721c41044ea3220445300e1b8", Experience: 800},
		}},
	}
}
