package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// PropertyRecord is one entry of a board dataset: the static description of
// a board slot, before any ownership state exists.
type PropertyRecord struct {
	Name  string `json:"name"`
	Price int    `json:"sale_price"`
	Rent  int    `json:"rent"`
}

// DefaultBoard returns the built-in 20-slot dataset.
func DefaultBoard() []PropertyRecord {
	return []PropertyRecord{
		{Name: "Avenida Paulista", Price: 240, Rent: 110},
		{Name: "Rua Augusta", Price: 100, Rent: 35},
		{Name: "Avenida Atlantica", Price: 220, Rent: 100},
		{Name: "Rua Oscar Freire", Price: 200, Rent: 90},
		{Name: "Praca da Se", Price: 60, Rent: 15},
		{Name: "Avenida Faria Lima", Price: 210, Rent: 95},
		{Name: "Rua das Laranjeiras", Price: 90, Rent: 30},
		{Name: "Avenida Beira-Mar", Price: 150, Rent: 60},
		{Name: "Rua XV de Novembro", Price: 80, Rent: 25},
		{Name: "Avenida Boa Viagem", Price: 190, Rent: 85},
		{Name: "Rua da Aurora", Price: 70, Rent: 20},
		{Name: "Avenida Afonso Pena", Price: 130, Rent: 50},
		{Name: "Rua Chile", Price: 60, Rent: 15},
		{Name: "Avenida Sete de Setembro", Price: 120, Rent: 45},
		{Name: "Rua Direita", Price: 50, Rent: 10},
		{Name: "Avenida Goias", Price: 110, Rent: 40},
		{Name: "Rua Halfeld", Price: 75, Rent: 20},
		{Name: "Avenida Borges de Medeiros", Price: 160, Rent: 65},
		{Name: "Rua Quinze", Price: 85, Rent: 25},
		{Name: "Avenida Ipiranga", Price: 170, Rent: 70},
	}
}

// LoadProperties reads a board dataset from a JSON file: an array of
// {"name", "sale_price", "rent"} objects.
func LoadProperties(path string) ([]PropertyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []PropertyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing board dataset %s: %w", path, err)
	}

	if err := validateRecords(records); err != nil {
		return nil, fmt.Errorf("board dataset %s: %w", path, err)
	}
	return records, nil
}

// validateRecords rejects datasets a game cannot be set up from.
func validateRecords(records []PropertyRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("no properties")
	}
	for i, r := range records {
		if r.Name == "" {
			return fmt.Errorf("property %d: missing name", i)
		}
		if r.Price <= 0 {
			return fmt.Errorf("property %q: sale price must be positive, got %d", r.Name, r.Price)
		}
		if r.Rent < 0 {
			return fmt.Errorf("property %q: rent must not be negative, got %d", r.Name, r.Rent)
		}
	}
	return nil
}
