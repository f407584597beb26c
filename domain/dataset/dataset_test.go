package dataset

import "testing"

func fixture() *Dataset {
	return &Dataset{
		Headers: []string{"Этап", "Владелец"},
		Rows: []Row{
			{"Этап": "Опубликован", "Владелец": "Иванов"},
			{"Этап": "Черновик", "Владелец": "Петров"},
			{"Этап": "Опубликован", "Владелец": "Петров"},
			{"Этап": "", "Владелец": "  "},
		},
	}
}

func TestRowIsFilled(t *testing.T) {
	row := Row{"a": "x", "b": "   ", "c": ""}
	if !row.IsFilled("a") {
		t.Error("non-blank cell must count as filled")
	}
	if row.IsFilled("b") || row.IsFilled("c") || row.IsFilled("missing") {
		t.Error("blank and absent cells must not count as filled")
	}
}

func TestRowIsEmpty(t *testing.T) {
	if !(Row{}).IsEmpty() {
		t.Error("empty row")
	}
	if !(Row{"a": " ", "b": ""}).IsEmpty() {
		t.Error("whitespace-only row")
	}
	if (Row{"a": "x"}).IsEmpty() {
		t.Error("row with a value")
	}
}

func TestDistinctValues(t *testing.T) {
	got := fixture().DistinctValues("Владелец")
	want := []string{"Иванов", "Петров"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFilterEqual(t *testing.T) {
	filtered := fixture().FilterEqual("Этап", "Опубликован")
	if filtered.Len() != 2 {
		t.Fatalf("got %d rows, want 2", filtered.Len())
	}
	for _, row := range filtered.Rows {
		if row.Value("Этап") != "Опубликован" {
			t.Errorf("row leaked through filter: %v", row)
		}
	}
}

func TestHasColumn(t *testing.T) {
	ds := fixture()
	if !ds.HasColumn("Этап") {
		t.Error("existing column")
	}
	if ds.HasColumn("Нет такой") {
		t.Error("missing column")
	}
}
