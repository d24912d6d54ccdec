package models

import "testing"

func TestTableNames(t *testing.T) {
	if got := (Network{}).TableName(); got != "networks" {
		t.Fatalf("expected networks got %s", got)
	}
}
