package registry

import (
	"testing"

	"github.com/aiaiai-hi/Report-App/domain/dataset"
)

func updateDataset(rows []dataset.Row) *dataset.Dataset {
	return &dataset.Dataset{
		Headers: []string{ColFormNumber, ColReportName, ColOwner, ColStage, ColTemplate, ColAttributesDescribed},
		Rows:    rows,
	}
}

func TestNeedingUpdate(t *testing.T) {
	tests := []struct {
		name     string
		row      dataset.Row
		actions  string
		comments string
		included bool
	}{
		{
			name: "complete published report omitted",
			row: dataset.Row{
				ColFormNumber: "1", ColReportName: "A", ColOwner: "Иванов",
				ColStage: StagePublished, ColTemplate: "да", ColAttributesDescribed: "да",
			},
			included: false,
		},
		{
			name: "unpublished report needs publication action",
			row: dataset.Row{
				ColFormNumber: "2", ColReportName: "B", ColOwner: "Иванов",
				ColStage: "Черновик", ColTemplate: "да", ColAttributesDescribed: "да",
			},
			included: true,
			actions:  "Необходимо довести отчет до публикации",
		},
		{
			name: "published report with gaps needs actualization request",
			row: dataset.Row{
				ColFormNumber: "3", ColReportName: "C", ColOwner: "",
				ColStage: StagePublished, ColTemplate: "да", ColAttributesDescribed: "да",
			},
			included: true,
			actions:  "Создать запрос на актуализацию",
			comments: "Заполнить поля (Владелец отчета ССП)",
		},
		{
			name: "unpublished report with gaps gets no actualization request",
			row: dataset.Row{
				ColFormNumber: "4", ColReportName: "D", ColOwner: "",
				ColStage: "Черновик", ColTemplate: "да", ColAttributesDescribed: "да",
			},
			included: true,
			actions:  "Необходимо довести отчет до публикации",
			comments: "Заполнить поля (Владелец отчета ССП)",
		},
		{
			name: "missing template and attributes",
			row: dataset.Row{
				ColFormNumber: "5", ColReportName: "E", ColOwner: "Иванов",
				ColStage: StagePublished, ColTemplate: "нет", ColAttributesDescribed: "нет",
			},
			included: true,
			comments: "Добавить шаблон; Описать атрибуты",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := NeedingUpdate(updateDataset([]dataset.Row{tt.row}))
			if !tt.included {
				if len(rows) != 0 {
					t.Fatalf("expected omission, got %+v", rows)
				}
				return
			}
			if len(rows) != 1 {
				t.Fatalf("expected one row, got %d", len(rows))
			}
			if rows[0].Actions != tt.actions {
				t.Errorf("actions = %q, want %q", rows[0].Actions, tt.actions)
			}
			if rows[0].Comments != tt.comments {
				t.Errorf("comments = %q, want %q", rows[0].Comments, tt.comments)
			}
		})
	}
}
