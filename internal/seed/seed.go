// Package seed loads the initial product catalog into an empty store.
package seed

import (
	"context"
	"fmt"

	"github.com/example/pedidos/internal/models"
	"github.com/example/pedidos/internal/store"
)

// Products inserts the initial catalog when the products collection is empty.
// A non-empty catalog is left untouched.
func Products(ctx context.Context, products *store.ProductStore) error {
	total, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	for _, p := range initialCatalog() {
		product := p
		if _, err := products.Save(ctx, &product); err != nil {
			return fmt.Errorf("seed: reference %s: %w", p.Reference, err)
		}
	}
	return nil
}

func initialCatalog() []models.Product {
	entry := func(reference string, price float64, description, category, color, sole, material string) models.Product {
		return models.Product{
			Reference:   reference,
			Price:       price,
			Description: description,
			Category:    category,
			Grid:        "33-46",
			Color:       color,
			Sole:        sole,
			Material:    material,
		}
	}

	return []models.Product{
		// Linha Segurança VIPFLEX
		entry("323", 78.00, "BOTINA AGROLEV ELASTICO", "Segurança VIPFLEX", "PALHA", "VIPFLEX FOLHA AMARELO", "LATEGO PALHA"),
		entry("327", 81.80, "BOTINA AGROLEV ELASTICO", "Segurança VIPFLEX", "MILHO", "VIPFLEX FOLHA AMARELO", "NOBUCK MILHO"),
		entry("328", 81.80, "BOTINA AGROLEV ELASTICO", "Segurança VIPFLEX", "CAFÉ", "VIPFLEX FOLHA GRAFITE", "NOBUCK CAFÉ"),
		entry("329", 81.80, "BOTINA AGROLEV ELASTICO", "Segurança VIPFLEX", "PRETO", "VIPFLEX FOLHA GRAFITE", "NOBUCK PRETO"),
		entry("330", 95.90, "COTURNO AGROLEV CADARÇO", "Segurança VIPFLEX", "CAFÉ", "VIPFLEX FOLHA GRAFITE", "NOBUCK CAFÉ"),
		entry("331", 89.90, "COTURNO AGROLEV CADARÇO", "Segurança VIPFLEX", "CHOCOLATE", "VIPFLEX FOLHA GRAFITE", "LATEGO CHOCOLATE"),
		entry("332", 89.90, "COTURNO AGROLEV CADARÇO", "Segurança VIPFLEX", "PALHA", "VIPFLEX FOLHA GRAFITE", "LATEGO PALHA"),
		entry("350", 99.90, "COTURNO AGROLEV VELCRO", "Segurança VIPFLEX", "CAFÉ", "VIPFLEX FOLHA GRAFITE", "NOBUCK CAFÉ"),
		entry("354", 96.50, "COTURNO AGROLEV VELCRO", "Segurança VIPFLEX", "CHOCOLATE", "VIPFLEX FOLHA GRAFITE", "LATEGO CHOCOLATE"),
		entry("360", 83.00, "BOTINA ELETRICISTA", "Segurança VIPFLEX", "CARAMELO", "VIPFLEX FOLHA AMARELO", "FLOTER CARA. HIDROF."),
		entry("2103", 81.00, "BOTINA SEG. VIPFLEX C/ ELASTICO", "Segurança VIPFLEX", "PRETA", "VIPFLEX PRETO/CAFÉ", "VAQUETA PRETA"),
		entry("2123", 81.00, "BOTINA SEG. VIPFLEX C/ ELASTICO", "Segurança VIPFLEX", "PALHA", "VIPFLEX PRETO/CARAMELO", "LATEGO PALHA"),
		entry("2124", 81.00, "BOTINA SEG. VIPFLEX C/ ELASTICO", "Segurança VIPFLEX", "CHOCOLATE", "VIPFLEX PRETO/CAFÉ", "LATEGO CHOCOLATE"),
		entry("2127", 86.00, "BOTINA SEG. VIPFLEX C/ ELASTICO", "Segurança VIPFLEX", "MILHO", "VIPFLEX PRETO/CARAMELO", "NOBUCK MILHO"),
		entry("2153", 98.00, "COTURNO SEG. VIPFLEX ACOLCH. C/ VELCRO", "Segurança VIPFLEX", "PRETA", "VIPFLEX PRETO/CAFÉ", "VAQUETA PRETA"),
		entry("2154", 98.00, "COTURNO SEG. VIPFLEX ACOLCH. C/ VELCRO", "Segurança VIPFLEX", "CHOCOLATE", "VIPFLEX PRETO/CAFÉ", "LATEGO CHOCOLATE"),
		entry("2170", 108.80, "COTURNO COMFORT VIPFLEX ACOLCH. C/ CADAR", "Segurança VIPFLEX", "MILHO", "VIPFLEX PRETO/CARAMELO", "NOBUCK MILHO"),

		// Linha Segurança BORRACHA
		entry("4001", 53.90, "BOTINA SEG./PNEU", "Segurança BORRACHA", "PRETA", "BORRACHA PRETO", "RASPA PRETA"),
		entry("4002", 53.90, "BOTINA SEG./PNEU", "Segurança BORRACHA", "AMARELA", "BORRACHA PRETO", "RASPA AMARELA"),
		entry("5001", 59.90, "BOTINA SEG. ELASTICO COBERTO CANO BAIXO", "Segurança BORRACHA", "PRETA", "BORRACHA PRETO", "RASPA LISA PRETA"),
		entry("5003", 63.60, "BOTINA SEG. ELASTICO COBERTO CANO BAIXO", "Segurança BORRACHA", "PRETA", "BORRACHA PRETO", "VAQUETA PRETA"),
		entry("5023", 63.60, "BOTINA SEG. ELASTICO COBERTO CANO BAIXO", "Segurança BORRACHA", "PALHA", "BORRACHA PRETO", "LATEGO PALHA"),
		entry("1001", 66.50, "BOTINA SEG. ELASTICO COBERTO", "Segurança BORRACHA", "PRETA", "BORRACHA PRETO", "RASPA PRETA"),
		entry("1003", 69.90, "BOTINA SEG. ELASTICO COBERTO", "Segurança BORRACHA", "PRETA", "BORRACHA PRETO", "VAQUETA PRETA"),
		entry("1010", 69.90, "BOTINA SEG. ELASTICO COBERTO", "Segurança BORRACHA", "FÓSSIL", "BORRACHA PRETO", "LATEGO FÓSSIL"),
		entry("1023", 69.90, "BOTINA SEG. ELASTICO COBERTO", "Segurança BORRACHA", "PALHA", "BORRACHA PRETO", "LATEGO PALHA"),
		entry("1024", 69.90, "BOTINA SEG. ELASTICO COBERTO", "Segurança BORRACHA", "CHOCOLATE", "BORRACHA PRETO", "LATEGO CHOCOLATE"),
		entry("26", 84.80, "BOTINA AGRO SEG. ELASTICO COBERTO", "Segurança BORRACHA", "RATO", "BORRACHA BICOLOR DELTA", "NOBUCK RATO"),
		entry("27", 84.80, "BOTINA AGRO SEG. ELASTICO COBERTO", "Segurança BORRACHA", "MILHO", "BORRACHA BICOLOR SENNA", "NOBUCK MILHO"),
		entry("28", 84.80, "BOTINA AGRO SEG. ELASTICO COBERTO", "Segurança BORRACHA", "CAFÉ", "BORRACHA BICOLOR SENNA", "NOBUCK CAFÉ"),
		entry("29", 84.80, "BOTINA AGRO SEG. ELASTICO COBERTO", "Segurança BORRACHA", "PRETO", "BORRACHA BICOLOR SENNA", "NOBUCK PRETO"),
		entry("3130", 89.90, "COTURNO CADARÇO ADV", "Segurança BORRACHA", "CAFÉ", "SOLADO TREKKING", "NOBUCK CAFÉ"),
		entry("3135", 89.90, "COTURNO CADARÇO ADV", "Segurança BORRACHA", "PRETO", "SOLADO TREKKING", "NOBUCK PRETO"),
		entry("200", 99.90, "BOTTENIS SEGURANCA", "Segurança BORRACHA", "RATO", "BORRACHA BICOLOR", "NOBUCK RATO"),
		entry("4055", 117.00, "COTURNO TIPO MILITAR CADARÇO C/ ZIPER", "Segurança BORRACHA", "PRETA", "BORRACHA PRETO", "VAQUETA PRETA"),

		// Linha Segurança P.U – BIDENSIDADE
		entry("1101", 81.90, "BOTINA SEG. ELASTICO COBERTO", "Segurança P.U", "PRETA", "PU BID. PRETO/GRAFITE", "RASPA PRETA"),
		entry("1103", 86.50, "BOTINA SEG. ELASTICO COBERTO", "Segurança P.U", "PRETA", "PU BID. PRETO/GRAFITE", "VAQUETA PRETA"),
		entry("1110", 86.50, "BOTINA SEG. ELASTICO COBERTO", "Segurança P.U", "FÓSSIL", "PU BID. PRETO/GRAFITE", "LATEGO FÓSSIL"),
		entry("1123", 86.50, "BOTINA SEG. ELASTICO COBERTO", "Segurança P.U", "PALHA", "PU BID. PRETO/GRAFITE", "LATEGO PALHA"),
		entry("1124", 86.50, "BOTINA SEG. ELASTICO COBERTO", "Segurança P.U", "CHOCOLATE", "PU BID. PRETO/GRAFITE", "LATEGO CHOCOLATE"),
		entry("1104", 96.90, "COTURNO SEG. ACOLCH. C/ CADARÇO", "Segurança P.U", "PRETA", "PU BID. PRETO/GRAFITE", "VAQUETA PRETA"),
		entry("1126", 96.90, "COTURNO SEG. ACOLCH. C/ CADARÇO", "Segurança P.U", "PALHA", "PU BID. PRETO/GRAFITE", "LATEGO PALHA"),
		entry("1128", 96.90, "COTURNO SEG. ACOLCH. C/ CADARÇO", "Segurança P.U", "CHOCOLATE", "PU BID. PRETO/GRAFITE", "LATEGO CHOCOLATE"),
		entry("1180", 95.00, "BOTINA SEG. ELASTICO COB. COMPOSITE", "Segurança P.U", "PRETA", "PU BID. PRETO/GRAFITE", "VAQUETA PRETA"),
		entry("1130", 99.90, "COTURNO SEG. ACOLCH. C/ CADARÇO", "Segurança P.U", "CAFÉ", "PU BID. PRETO/GRAFITE", "NOBUCK CAFÉ"),
		entry("1185", 106.60, "COTURNO SEG. ACOLCH. C/ CADARÇO", "Segurança P.U", "PRETA", "PU BID. PRETO/GRAFITE", "VAQUETA PRETA"),
		entry("1153", 105.50, "COTURNO SEG. ACOLCH. C/ VELCRO", "Segurança P.U", "PRETA", "PU BID. PRETO/GRAFITE", "VAQUETA PRETA"),
		entry("1154", 105.50, "COTURNO SEG. ACOLCH. C/ VELCRO", "Segurança P.U", "CHOCOLATE", "PU BID. PRETO/GRAFITE", "LATEGO CHOCOLATE"),
		entry("1150", 110.90, "COTURNO SEG. ACOLCH. C/ VELCRO", "Segurança P.U", "CAFÉ", "PU BID. PRETO/GRAFITE", "NOBUCK CAFÉ"),
		entry("1155", 110.90, "COTURNO SEG. ACOLCH. C/ VELCRO", "Segurança P.U", "PRETO", "PU BID. PRETO/GRAFITE", "NOBUCK PRETO"),

		// Linha Infantil
		entry("76", 50.80, "BOTINA INFANTIL TRADICIONAL. 2 PIQ", "Infantil", "PALHA", "BORRACHA PRETO", "LATEGO PALHA"),
		entry("78", 56.50, "BOTINA INFANTIL TRADICIONAL. 2 PIQ", "Infantil", "CAFÉ", "PVC NATURAL", "NOBUCK CAFÉ"),
		entry("79", 56.50, "BOTINA INFANTIL TRADICIONAL. 2 PIQ", "Infantil", "MILHO", "PVC NATURAL", "NOBUCK MILHO"),

		// Linha Passeio
		entry("9", 105.90, "BOTINA ELASTICO COBERTO", "Passeio", "PALHA", "LATEX NATURAL", "LATEGO PALHA"),
		entry("10", 91.00, "BOTINA ELASTICO COBERTO", "Passeio", "CAFÉ", "BORRACHA CAFÉ", "NOBUCK CAFÉ"),
		entry("17", 99.90, "BOTINA TRADICIONAL 2PIQ BORDADO", "Passeio", "CAFÉ", "LATEX NATURAL", "NOBUCK CAFÉ"),
		entry("35", 105.00, "BOTINA ACOLCH. ZIPER", "Passeio", "CAFÉ", "BORRACHA CAFÉ", "NOBUCK CAFÉ"),
		entry("36", 117.80, "BOTINA ACOLCH. ZIPER", "Passeio", "PALHA", "LATEX NATURAL", "LATEGO PALHA"),
		entry("38", 109.90, "BOTINA ACOLCH. ZIPER", "Passeio", "PRETA", "LATEX PRETO", "VAQUETA PRETA"),
		entry("81", 94.40, "BOTINA CHELSEA FLOTER BR", "Passeio", "CHOCOLATE", "BORRACHA SELEIRO", "FLOTER CHOCOLATE"),
		entry("82", 94.40, "BOTINA CHELSEA FLOTER BR", "Passeio", "PRETA", "BORRACHA SELEIRO", "FLOTER PRETA"),
		entry("83", 94.40, "BOTINA CHELSEA FLOTER BR", "Passeio", "FÓSSIL", "BORRACHA SELEIRO", "FLOTER FOSSIL"),
		entry("180", 92.90, "BOTINA VAQUEIRO B. REDONDO", "Passeio", "PALHA", "LATEX NATURAL", "LATEGO PALHA"),

		// Linha Serviço
		entry("500", 53.90, "BOTINA SERVIÇO", "Serviço", "PRETA", "BORRACHA PRETO", "RASPA LISA PRETO"),
		entry("403", 56.50, "BOTINA SERVIÇO COM COSTURA LATERAL", "Serviço", "PALHA", "SOLADO BOIADEIRO", "LATEGO PALHA"),
		entry("503", 56.50, "BOTINA SERVIÇO", "Serviço", "PALHA", "BORRACHA PRETO", "LATEGO PALHA"),
		entry("504", 56.50, "BOTINA SERVIÇO", "Serviço", "PRETA", "BORRACHA PRETO", "VAQUETA PRETA"),
		entry("506", 56.50, "BOTINA SERVIÇO", "Serviço", "CHOCOLATE", "BORRACHA PRETO", "LATEGO CHOCOLATE"),
		entry("510", 56.50, "BOTINA SERVIÇO", "Serviço", "FÓSSIL", "BORRACHA PRETO", "LATEGO FÓSSIL"),
		entry("502", 58.60, "BOTINA COLHEDOR DE CAFÉ", "Serviço", "PALHA", "CHUTEIRA PRETO", "LATEGO PALHA"),
		entry("505", 61.60, "BOTINA SERVIÇO", "Serviço", "PALHA", "PVC NATURAL", "LATEGO PALHA"),
		entry("507", 65.90, "BOTINA SERVIÇO", "Serviço", "CAFÉ", "PVC NATURAL", "NOBUCK CAFÉ"),
		entry("606", 69.90, "BOTINA 2 PIQ C/ TIRA", "Serviço", "PALHA", "BORRACHA PRETO", "LATEGO PALHA"),
		entry("605", 73.80, "BOTINA 2 PIQ C/ TIRA", "Serviço", "PALHA", "PVC NATURAL", "LATEGO PALHA"),

		// Linha Sapato
		entry("3002", 58.90, "SAPATO SEG. ACOLCH. CADARÇO", "Sapato", "PRETA", "BORRACHA PRETO", "VAQUETA PRETA"),
		entry("3006", 58.90, "SAPATO SEG. ACOLCH. ELASTICO", "Sapato", "PRETA", "BORRACHA PRETO", "VAQUETA PRETA"),
		entry("3020", 65.50, "SAPATO SOCIAL CADARÇO BICO QUADRADO", "Sapato", "PRETA", "BORRACHA PRETO", "VAQUETA PRETA"),
		entry("3000", 74.00, "SAPATO SOCIAL CADARÇO BICO REDONDO", "Sapato", "PRETA", "BORRACHA PRETO", "VAQUETA PRETA"),
		entry("3030", 74.00, "SAPATO SOCIAL CADARÇO BICO QUADRADO", "Sapato", "PRETA", "BORRACHA PRETO", "VAQUETA PRETA"),
		entry("3220", 72.30, "SAPATO FEMININO ELASTICO", "Sapato", "PRETA", "PVC PRETO", "VAQUETA PRETA"),
		entry("3040", 82.80, "SAPATO SOCIAL ELÁSTICO BICO QUADRADO", "Sapato", "PRETA", "BORRACHA PRETO", "VAQUETA PRETA"),
		entry("3102", 79.90, "SAPATO SEG. ACOLCH. ELASTICO", "Sapato", "PRETA", "PU BID. PRETO/GRAFITE", "RELAX PRETA"),
		entry("3101", 86.00, "SAPATO SEG. ACOLCH. ELASTICO", "Sapato", "PRETA", "PU BID. PRETO/GRAFITE", "VAQUETA PRETA"),
	}
}
