package attribute

// SheetName is the sheet the catalog importer looks for.
const SheetName = "Атрибут отчета"

// TechnicalHeaders are the machine-readable column keys written to the hidden
// first row of the attribute workbook. Order is part of the import contract.
var TechnicalHeaders = []string{
	"ReportCode_info",
	"Noreportfield_info",
	"name",
	"description",
	"TechAsIs",
	"BussAlgorythm",
	"TechAlgorythm",
	"algorithms_change_info",
	"dbobjectlink",
	"base_type_info",
	"related_it_system_info",
	"reportfields_codes",
	"reportfields_names",
	"reportfields_parent_term",
	"reportfields_domain",
	"required_attribute_info",
	"base_type_report_field",
	"base_calc_ref_ind_info",
	"codeTable_info",
	"example",
	"isToDelete_info",
}

// UserHeaders are the human-readable titles written in bold to the visible
// second row, positionally matched to TechnicalHeaders.
var UserHeaders = []string{
	"Код атрибута отчета",
	"№ атрибута отчета",
	"Наименование атрибута",
	"Бизнес-алгоритм AS IS",
	"Технический алгоритм AS IS",
	"Бизнес-алгоритм TO BE",
	"Технический алгоритм TO BE",
	"Алгоритм изменен",
	"Физические атрибуты",
	"Тип источника данных",
	"Связь с информационной системой",
	"Код термина/терминов",
	"Наименование термина/терминов",
	"Наименование родительской сущности термина/терминов",
	"Домен термина/терминов",
	"Обязательный атрибут для заполнения",
	"Базовый тип атрибута (Текст, Число, Дата, Флаг)",
	"Признак атрибута (Базовый, Расчетный, Справочный)",
	"Наименование справочника",
	"Примечание",
	"Помечен к удалению (да/нет)",
}
