package seed

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/retail-catalog/internal/domains/catalog/domain"
)

func TestLoad_Catalog(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	require.Len(t, s.Categories, 2)

	phones := s.Categories[0]
	require.Equal(t, "Smartphones", phones.Name)
	require.Equal(t, "Phones", phones.Description)
	require.Len(t, phones.Products, 2)

	caseInput := phones.Products[0]
	require.Equal(t, domain.KindProduct, caseInput.ResolvedKind())
	require.Equal(t, domain.Record{Name: "Phone case", Price: 1500, Quantity: 20}, caseInput.Record)

	phone := phones.Products[1]
	require.Equal(t, domain.KindSmartphone, phone.ResolvedKind())
	require.Equal(t, &domain.SmartphoneSpec{Efficiency: 3.5, Model: "15 Pro", Memory: 256, Color: "blue"}, phone.Smartphone)

	grass := s.Categories[1].Products[0]
	require.Equal(t, &domain.LawnGrassSpec{Country: "Germany", GerminationPeriod: 14, Color: "green"}, grass.LawnGrass)

	built, err := grass.Build(domain.WithCurrency("eur"))
	require.NoError(t, err)
	require.Equal(t, "Premium grass, 2500.0 eur. Remaining: 100 units.", built.Describe())
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("categories:\n  - name: x\n    prodcts: []\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode seed")
}

func TestDecode_Empty(t *testing.T) {
	s, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, s.Categories)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_DemoCatalogue(t *testing.T) {
	s, err := Load(filepath.Join("..", "..", "..", "..", "..", "configs", "seed.yaml"))
	require.NoError(t, err)
	require.Len(t, s.Categories, 2)
	for _, c := range s.Categories {
		for _, p := range c.Products {
			_, err := p.Build()
			require.NoError(t, err, p.Name)
		}
	}
}
