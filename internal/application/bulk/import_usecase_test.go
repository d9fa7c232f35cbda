package bulk_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/bulk"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func strPtr(s string) *string { return &s }

// parseRows decodifica un CSV literal (útil para probar parser e import juntos).
func parseRows(t *testing.T, csvText string) []bulk.Row {
	t.Helper()
	rows, err := bulk.ParseCSV(strings.NewReader(csvText))
	require.NoError(t, err)
	return rows
}

// ──────────────────────────────────────────────────────────────────────────────
// Import
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_SinFilas_RetornaInvalidInput(t *testing.T) {
	uc := bulk.NewImportUseCase(memory.NewProductRepository(), testLogger())

	_, err := uc.Import(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Import([]bulk.Row{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImport_FilasValidas_SeAgreganTodas(t *testing.T) {
	repo := memory.NewProductRepository()
	uc := bulk.NewImportUseCase(repo, testLogger())

	out, err := uc.Import([]bulk.Row{
		{Name: "Tornillo", Unit: "caja", Category: "ferretería", Brand: "Acme", Stock: strPtr("10"), Status: "disponible"},
		{Name: "Tuerca", Stock: strPtr("3")},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Added)
	assert.Equal(t, 0, out.Skipped)
	assert.Empty(t, out.Duplicates)

	p, err := repo.GetByName("Tornillo")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 10, p.Stock)
	assert.Equal(t, "caja", p.Unit)
}

func TestImport_FilaSinNombre_SeSalta(t *testing.T) {
	uc := bulk.NewImportUseCase(memory.NewProductRepository(), testLogger())

	out, err := uc.Import([]bulk.Row{
		{Name: "", Stock: strPtr("5")},
		{Name: "Tuerca", Stock: strPtr("3")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Added)
	assert.Equal(t, 1, out.Skipped)
}

func TestImport_FilaSinColumnaStock_SeSalta(t *testing.T) {
	uc := bulk.NewImportUseCase(memory.NewProductRepository(), testLogger())

	out, err := uc.Import([]bulk.Row{
		{Name: "Tornillo", Stock: nil}, // la fila no traía la columna
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Added)
	assert.Equal(t, 1, out.Skipped)
}

func TestImport_StockNoNumerico_SeInsertaConCero(t *testing.T) {
	repo := memory.NewProductRepository()
	uc := bulk.NewImportUseCase(repo, testLogger())

	out, err := uc.Import([]bulk.Row{
		{Name: "Tornillo", Stock: strPtr("muchos")},
		{Name: "Tuerca", Stock: strPtr("")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Added, "stock no numérico no descarta la fila, se convierte en 0")

	p, err := repo.GetByName("Tornillo")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 0, p.Stock)
}

func TestImport_DuplicadoInsensibleAMayusculas(t *testing.T) {
	repo := memory.NewProductRepository()
	now := time.Now()
	require.NoError(t, repo.Create(&entity.Product{
		ID: "existente-1", Name: "Tornillo", Stock: 5, CreatedAt: now, UpdatedAt: now,
	}))
	uc := bulk.NewImportUseCase(repo, testLogger())

	out, err := uc.Import([]bulk.Row{
		{Name: "TORNILLO", Stock: strPtr("9")},
		{Name: "Tuerca", Stock: strPtr("1")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Added)
	assert.Equal(t, 1, out.Skipped, "el duplicado también cuenta como saltado")
	require.Len(t, out.Duplicates, 1)
	assert.Equal(t, "TORNILLO", out.Duplicates[0].Name, "se reporta el nombre tal como vino en el archivo")
	assert.Equal(t, "existente-1", out.Duplicates[0].ExistingID)
}

func TestImport_ArchivoTodoDuplicado(t *testing.T) {
	repo := memory.NewProductRepository()
	now := time.Now()
	for i, name := range []string{"Tornillo", "Tuerca", "Clavo"} {
		require.NoError(t, repo.Create(&entity.Product{
			ID: "id-" + name, Name: name, Stock: i, CreatedAt: now, UpdatedAt: now,
		}))
	}
	uc := bulk.NewImportUseCase(repo, testLogger())

	out, err := uc.Import([]bulk.Row{
		{Name: "tornillo", Stock: strPtr("1")},
		{Name: "TUERCA", Stock: strPtr("2")},
		{Name: "Clavo", Stock: strPtr("3")},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Added)
	assert.Equal(t, 3, out.Skipped)
	assert.Len(t, out.Duplicates, 3)
}

func TestImport_DuplicatesSiempreInicializado(t *testing.T) {
	uc := bulk.NewImportUseCase(memory.NewProductRepository(), testLogger())

	out, err := uc.Import([]bulk.Row{{Name: "Tornillo", Stock: strPtr("1")}})
	require.NoError(t, err)
	assert.NotNil(t, out.Duplicates, "duplicates debe serializar como [] y no como null")
}
