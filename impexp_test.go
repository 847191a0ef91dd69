package moneybook

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	in := []Transaction{
		tx(1, "2024-03-01", "Salary", 2000000, Income, Fixed),
		tx(2, "2024-03-02", "Coffee, with cake", 12000, Expense, Variable),
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, in); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	out, err := ImportCSV(&buf)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("imported %d, want %d", len(out), len(in))
	}
	for i := range in {
		if !out[i].Equal(in[i]) {
			t.Errorf("entry %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestImportRejectsBadRows(t *testing.T) {
	testCases := []struct {
		name string
		csv  string
	}{
		{name: "bad amount", csv: "1,2024-01-01,Coffee,abc,expense,variable"},
		{name: "negative amount", csv: "1,2024-01-01,Coffee,-5,expense,variable"},
		{name: "bad date", csv: "1,someday,Coffee,4500,expense,variable"},
		{name: "bad type", csv: "1,2024-01-01,Coffee,4500,loan,variable"},
		{name: "missing column", csv: "1,2024-01-01,Coffee,4500,expense"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportCSV(strings.NewReader(tc.csv)); err == nil {
				t.Error("ImportCSV should fail")
			}
		})
	}
}

func TestImportEmptyInput(t *testing.T) {
	out, err := ImportCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("imported %v from empty input", out)
	}
}

func TestExportPreservesOrder(t *testing.T) {
	in := []Transaction{
		tx(3, "2024-03-03", "C", 3, Expense, Variable),
		tx(1, "2024-03-01", "A", 1, Expense, Variable),
		tx(2, "2024-03-02", "B", 2, Expense, Variable),
	}
	var buf bytes.Buffer
	if err := ExportCSV(&buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := ImportCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids(out), []int64{3, 1, 2}) {
		t.Errorf("order = %v, want [3 1 2]", ids(out))
	}
}
