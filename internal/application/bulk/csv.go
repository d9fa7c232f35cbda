package bulk

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row una fila plana del CSV de import, ya mapeada por nombre de columna.
// Stock es puntero: nil significa que la fila no traía la columna, distinto de
// traerla vacía (que se convierte en 0 al insertar).
type Row struct {
	Name     string
	Unit     string
	Category string
	Brand    string
	Stock    *string
	Status   string
	Image    string
}

// ParseCSV decodifica el archivo de import: una línea de cabecera con nombres
// de columna y una fila por producto. Filas con menos campos que la cabecera
// se aceptan (las columnas faltantes quedan vacías / Stock nil).
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // permitir filas con distinto número de columnas

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		// El primer campo puede venir con BOM si el archivo salió de Excel
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		index[strings.ToLower(name)] = i
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer fila: %w", err)
		}
		row := Row{
			Name:     field(record, "name"),
			Unit:     field(record, "unit"),
			Category: field(record, "category"),
			Brand:    field(record, "brand"),
			Status:   field(record, "status"),
			Image:    field(record, "image"),
		}
		if i, ok := index["stock"]; ok && i < len(record) {
			v := record[i]
			row.Stock = &v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
