// Package registry analyzes the uploaded report registry: field completion,
// publication rates, and the two staleness recommendation lists shown on the
// dashboard.
package registry

// Well-known registry column names. The registry export is wide and varies
// between uploads; only these columns carry meaning for the analyzers, the
// rest participate in the fill-rate scan by name.
const (
	ColFormNumber          = "Номер формы"
	ColReportName          = "Наименование отчета"
	ColOwner               = "Владелец отчета ССП"
	ColStage               = "Этап отчета"
	ColFormationType       = "Тип формирования отчета"
	ColLastPublication     = "Дата последней публикации отчета"
	ColLastDraft           = "Дата создания последнего черновика"
	ColTemplate            = "Шаблон отчета"
	ColAttributesDescribed = "Атрибуты описаны"
	ColParticipation       = "Участие в формировании РФ"
	ColParentUnit          = "ССП, в функциональном подчинении которого, находятся сотрудники РФ"
	ColFrequency           = "Частота отчета"
	ColManualFrequency     = "Частота отчета (ручной ввод)"
)

// StagePublished is the publication stage a finished report carries.
const StagePublished = "Опубликован"

// FilterAll is the sentinel filter value that bypasses filtering.
const FilterAll = "Все"

// DateColumns are rendered as dd.mm.yyyy in the detail tables.
var DateColumns = []string{ColLastDraft, ColLastPublication}

// IsDateColumn reports whether the named column holds a date.
func IsDateColumn(name string) bool {
	for _, col := range DateColumns {
		if col == name {
			return true
		}
	}
	return false
}
