package deck

// ClosingSlideCount is the number of fixed frames after the content slides:
// two bibliography pages and a footer.
const ClosingSlideCount = 3

// RenderedCount is the number of frames a deck with n content slides plays:
// the opening hero frame, the content and the closing frames.
func RenderedCount(n int) int {
	return 1 + n + ClosingSlideCount
}

type Reference struct {
	Author  string
	Title   string
	Details string
}

// BibliographyPage is one of the two reference frames.
type BibliographyPage struct {
	Heading    string
	References []Reference
}

var bibliography = []Reference{
	{Author: "A BÍBLIA SAGRADA.", Title: "Livro de Gênesis.", Details: "Capítulo 1:28 (O Mandato Cultural)."},
	{Author: "A BÍBLIA SAGRADA.", Title: "Livro de Malaquias.", Details: "Capítulo 2:15 (Descendência para Deus)."},
	{Author: "A BÍBLIA SAGRADA.", Title: "Livro de Salmos.", Details: "Salmo 127 (Filhos como herança e flechas)."},
	{Author: "A BÍBLIA SAGRADA.", Title: "1 Timóteo.", Details: "Capítulo 5:8 (O cuidado dos seus)."},
	{Author: "A BÍBLIA SAGRADA.", Title: "Evangelho de Mateus.", Details: "Capítulo 6:25-34 (A Providência Divina)."},
	{Author: "VAN TIL, Cornelius.", Title: "A Estrutura da Aliança.", Details: "Teologia Reformada e o Pacto."},
	{Author: "BAVINCK, Herman.", Title: "A Família Cristã.", Details: "Ética e Dogmática Reformada."},
	{Author: "SPROUL, R.C.", Title: "O Propósito do Casamento.", Details: "Ligonier Ministries."},
}

// Bibliography returns page 1 or 2; any other number yields an empty page.
func Bibliography(page int) BibliographyPage {
	switch page {
	case 1:
		return BibliographyPage{Heading: "Referências Bíblicas", References: bibliography[:4]}
	case 2:
		return BibliographyPage{Heading: "Referências Teológicas", References: bibliography[4:]}
	default:
		return BibliographyPage{}
	}
}

// FooterCredit is the attribution line on the last frame.
func FooterCredit(m Metadata) string {
	return "Baseado no estudo bíblico apresentado por " + m.Author + "."
}
