package deck

// DefaultMetadata describes the bundled starter deck.
func DefaultMetadata() Metadata {
	return Metadata{
		Title:    "O Mandato Pactual",
		Subtitle: "Abertura à Vida e a Glória de Deus na Família",
		Author:   "PROFESSOR ABRAÃO GUIMARÃES SOUSA",
	}
}

// HeroTagline is shown under the title on the opening frame.
const HeroTagline = "O casamento como uma aliança divina cujo propósito primário é a geração de uma descendência piedosa para a glória de Deus."

func DefaultOrbit() *OrbitData {
	return &OrbitData{Center: "Cristo", Orbit1: "Casal", Orbit2: "Filhos", Label1: "Aliança", Label2: "Herança"}
}

func DefaultChart() *ChartData {
	return &ChartData{
		Title:      "Investimento Eterno",
		LeftLabel:  "Conforto",
		RightLabel: "Legado",
		Option1:    "Mundana",
		Option2:    "Reino",
	}
}

func DefaultTimeline() []TimelineEvent {
	return []TimelineEvent{
		{ID: "0", Year: "Gênesis 1:28", Label: "Fundação", Desc: "O Mandato Cultural: Sede fecundos e multiplicai-vos."},
		{ID: "1", Year: "Salmo 127", Label: "Bênção", Desc: "Os filhos são herança do Senhor, galardão divino."},
		{ID: "2", Year: "Hoje", Label: "Missão", Desc: "Criar uma descendência piedosa para a glória de Deus."},
	}
}

// Default returns a fresh copy of the starter deck with newly assigned ids.
func Default() Document {
	slides := starterSlides()
	EnsureIDs(slides)
	return Document{Slides: slides, Meta: DefaultMetadata()}
}

func starterSlides() []Slide {
	return []Slide{
		{
			Layout: LayoutStandard,
			Content: Content{
				Chapter: "Introdução",
				Title:   "Propósito Divino para o Casamento",
				Text: []string{
					"Em uma cultura que redefine o casamento como um contrato para a felicidade individual, a Escritura nos chama de volta à sua origem e propósito. Este estudo examina o casamento não como uma invenção social, mas como uma instituição divina com fins teleológicos claros.",
					"Na teologia reformada, o casamento é a 'piscina seminal' da Igreja, o principal meio pelo qual Deus levanta uma descendência piedosa para Si mesmo, cumprindo Suas promessas pactuais de Gênesis a Apocalipse.",
				},
			},
		},
		{
			Layout: LayoutQuote,
			Content: Content{
				Chapter: "Introdução",
				Title:   "Mais que Companhia",
				Highlight: "E se o propósito principal do seu casamento não for a sua felicidade, mas a expansão do Reino de Deus através da sua família?",
				Text: []string{
					"Frequentemente buscamos no casamento a satisfação pessoal e a realização emocional. Embora sejam benefícios da união, não são seu fim último.",
					"Somos comissionados divinamente para uma tarefa maior que nós mesmos: a construção de um legado de fé que atravessa gerações e glorifica o Criador.",
				},
			},
		},
		{
			Layout: LayoutStandard,
			Content: Content{
				Chapter: "Ponto 1: Teleologia",
				Title:   "A Ilegitimidade da Intenção Contra a Vida",
				Text: []string{
					"O profeta Malaquias (2:15) estabelece a causa final da união de 'uma só carne': 'Ele buscava uma descendência para Deus'. Um casamento que decide, a priori e permanentemente, não ter filhos, atenta contra a própria definição do pacto.",
					"É um casamento que deseja os benefícios da união, como prazer e companhia, mas rejeita o seu fim primário, a frutificação, contradizendo a natureza pactual estabelecida por Deus.",
				},
			},
		},
		{
			Layout: LayoutDarkOrbit,
			Content: Content{
				Chapter: "Ponto 1: Teleologia",
				Title:   "O Imperativo Criacional",
				Text: []string{
					"'Frutificai e multiplicai-vos' (Gênesis 1:28) é o primeiro mandamento da Bíblia, o Mandato Cultural. Este mandamento foi dado antes da Queda, indicando que a procriação é parte da função do homem como Imagem de Deus.",
					"Negar a procriação é, em essência, negar a expansão da Imagem de Deus no mundo. Nossa vocação é encher a terra com reflexos da glória divina através de nossa descendência.",
				},
				Orbit: DefaultOrbit(),
			},
		},
		{
			Layout: LayoutQuote,
			Content: Content{
				Chapter: "Ponto 1: Teleologia",
				Title:   "Bênção e Maldição",
				Highlight: "Por que transformaríamos voluntariamente uma bênção (Salmo 127) em um fardo a ser evitado?",
				Text: []string{
					"Nas Escrituras, a madre aberta é invariavelmente descrita como bênção (Sl 127:3). A esterilidade, por outro lado, é frequentemente vista como uma maldição ou juízo (Oséias 9:14).",
					"Examine seu coração. Sua visão de casamento está alinhada com o desígnio do Criador ou com o dogma da autonomia do mundo? O propósito de Deus deve prevalecer sobre preferências pessoais.",
				},
			},
		},
		{
			Layout: LayoutStandard,
			Content: Content{
				Chapter: "Ponto 2: Ética Cristã",
				Title:   "Intervenção e Mordomia",
				Text: []string{
					"Se é lícito usar a medicina para restaurar a fertilidade, reconhecemos que a biologia é uma área de mordomia. Por coerência, a regulação da fertilidade para espaçamento não é intrinsecamente pecaminosa.",
					"O controle não deve ser para evitar a vida permanentemente por egoísmo, mas para gerenciar a família com prudência e responsabilidade diante de Deus.",
				},
			},
		},
		{
			Layout: LayoutTimeline,
			Content: Content{
				Chapter: "Ponto 2: Ética Cristã",
				Title:   "Limites Legítimos",
				Text: []string{
					"A Escritura ordena: 'Se alguém não tem cuidado dos seus... negou a fé' (1 Timóteo 5:8). Razões legítimas para o espaçamento incluem risco grave à vida da mãe, incapacidade severa de sustento ou crises de saúde.",
					"A paternidade exige responsabilidade. Não é um ato de fé cega, mas de mordomia consciente, onde cada decisão visa o bem-estar e a educação cristã da prole.",
				},
				Timeline: DefaultTimeline(),
			},
		},
		{
			Layout: LayoutQuote,
			Content: Content{
				Chapter: "Ponto 2: Ética Cristã",
				Title:   "O Limite Absoluto",
				Highlight: "Devemos distinguir claramente entre contracepção e aborto. Métodos abortivos são inaceitáveis.",
				Text: []string{
					"Métodos que impedem a nidação do embrião são microabortivos e violam o mandamento 'Não Matarás'. Eles atentam contra uma vida humana já concebida à imagem de Deus.",
					"Busque sabedoria. Suas decisões são motivadas pela mordomia fiel e desejo de glorificar a Deus, ou pelo medo e egoísmo?",
				},
			},
		},
		{
			Layout: LayoutStandard,
			Content: Content{
				Chapter: "Ponto 3: Objeções",
				Title:   "Economia e Providência",
				Text: []string{
					"A mentalidade de escassez contradiz a promessa bíblica. Deus, que alimenta as aves e veste os lírios (Mateus 6), não daria 'bocas' sem prover o 'pão'.",
					"Frequentemente, a 'falta de dinheiro' é uma recusa em ajustar o padrão de vida e confiar na providência de Deus. A fé nos convida a depender do Pai celestial.",
				},
			},
		},
		{
			Layout: LayoutDarkOrbit,
			Content: Content{
				Chapter: "Ponto 3: Objeções",
				Title:   "Pessimismo e Antítese",
				Text: []string{
					"O mundo jaz no maligno desde Gênesis 3. Justamente por isso, precisamos de mais luz. Gerar filhos piedosos é um ato de guerra espiritual.",
					"É lançar 'flechas' (Sl 127:4) contra as portas do inferno, confiando na segurança do Pacto para os eleitos e na promessa de que a luz prevalece sobre as trevas.",
				},
				Orbit: DefaultOrbit(),
			},
		},
		{
			Layout: LayoutChart,
			Content: Content{
				Chapter: "Ponto 3: Objeções",
				Title:   "Hedonismo e Kenosis",
				Text: []string{
					"A recusa em sacrificar conforto, tempo e corpo por outrem é a antítese do Evangelho. A família é uma escola de santificação onde aprendemos a morrer para nós mesmos diariamente.",
					"Imitamos a Cristo, que se esvaziou (Kenosis) por Sua Noiva, a Igreja. A paternidade é um chamado ao sacrifício e ao amor que se doa.",
				},
				Chart: DefaultChart(),
			},
		},
		{
			Layout: LayoutStandard,
			Content: Content{
				Chapter: "Conclusão",
				Title:   "Resgate do Propósito",
				Text: []string{
					"Vimos que o casamento tem um propósito divino de gerar uma descendência para Deus, que a mordomia cristã guia nosso planejamento familiar, e que a fé em Cristo vence os medos e o egoísmo do mundo.",
					"Rejeite o espírito desta época. Não permita que o medo do mundo dite o tamanho da sua família, mas sim a esperança no Deus da Aliança.",
				},
			},
		},
		{
			Layout: LayoutQuote,
			Content: Content{
				Chapter: "Conclusão",
				Title:   "Enchendo a Aljava",
				Highlight: "Tenham filhos. Confiem na Providência. Rejeitem a mentalidade estéril deste século.",
				Text: []string{
					"Aos não casados, busquem um cônjuge para construir o Reino. Aos pais, criem seus filhos para o Pacto, não para o mercado. Aos casados, não sacrifiquem a bênção dos filhos no altar do conforto.",
					"Abracem a coragem de encher suas aljavas para a glória de Cristo, confiando que Ele capacitará aqueles a quem chama.",
				},
			},
		},
	}
}
