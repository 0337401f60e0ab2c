package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// PayerProfile perfil de pagador tal como se declara en el archivo YAML.
type PayerProfile struct {
	Name    string `yaml:"name"`
	Account string `yaml:"account"`
	TaxCode string `yaml:"tax_code"`
}

type payersFile struct {
	Payers []PayerProfile `yaml:"payers"`
}

// DefaultPayers perfiles incorporados, usados cuando no hay archivo configurado.
func DefaultPayers() []PayerProfile {
	return []PayerProfile{
		{Name: "Importante LLC", Account: "1570075735510200", TaxCode: "1800232459"},
		{Name: "Fullstreet LLC", Account: "1570071837240100", TaxCode: "1800505444"},
		{Name: "Companeros LLC", Account: "1570065841128400", TaxCode: "1800510675"},
		{Name: "Westparks LLC", Account: "1570094754410100", TaxCode: "1800520342"},
		{Name: "CJ", Account: "1570098200832000", TaxCode: "1800522974"},
		{Name: "Santino", Account: "1570098200832000", TaxCode: "1800522974"},
		{Name: "Primefood LLC", Account: "1570075401620100", TaxCode: "1800222826"},
	}
}

// LoadPayers lee los perfiles desde path. Path vacío o inexistente devuelve DefaultPayers.
func LoadPayers(path string) ([]PayerProfile, error) {
	if path == "" {
		return DefaultPayers(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultPayers(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: leer pagadores: %w", err)
	}
	return ParsePayers(data)
}

// ParsePayers decodifica el YAML `payers: [{name, account, tax_code}]`.
func ParsePayers(data []byte) ([]PayerProfile, error) {
	var f payersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parsear pagadores: %w", err)
	}
	for i, p := range f.Payers {
		if p.Name == "" || p.Account == "" || p.TaxCode == "" {
			return nil, fmt.Errorf("config: pagador %d incompleto", i+1)
		}
	}
	return f.Payers, nil
}
