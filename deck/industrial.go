package deck

// Filename of the generated presentation.
const Filename = "industrial_revolution.pptx"

// IndustrialPalette is the dark/copper scheme of the deck.
var IndustrialPalette = Palette{
	Dark:   Color{R: 28, G: 25, B: 23},
	Accent: Color{R: 180, G: 83, B: 9},
	Light:  Color{R: 214, G: 211, B: 209},
	White:  Color{R: 255, G: 255, B: 255},
}

var stages = []Item{
	{
		Heading:     "Первая революция (1760-1840)",
		Subheading:  "Великобритания",
		Description: "Механизация производства, паровой двигатель, текстильная промышленность. Паровые машины Уатта, железные дороги.",
	},
	{
		Heading:     "Вторая революция (1870-1914)",
		Subheading:  "США, Германия",
		Description: "Электричество, нефть, массовое производство. Конвейер Форда, электрификация городов, химическая промышленность.",
	},
	{
		Heading:     "Третья революция (1950-2000)",
		Subheading:  "Глобальная",
		Description: "Компьютеризация, автоматизация, информационные технологии. Роботизация производства, интернет, глобализация экономики.",
	},
}

var inventions = []Item{
	{
		Heading:     "Паровой двигатель (1769)",
		Subheading:  "Джеймс Уатт",
		Description: "Революция в транспорте и производстве. Паровозы, пароходы, фабричные станки. Независимый источник энергии.",
	},
	{
		Heading:     "Ткацкий станок (1785)",
		Subheading:  "Эдмунд Картрайт",
		Description: "Рост производительности в 40 раз. Текстильные фабрики, массовое производство ткани, снижение цен на одежду.",
	},
	{
		Heading:     "Электрическая лампа (1879)",
		Subheading:  "Томас Эдисон",
		Description: "Круглосуточная работа предприятий. Ночные смены, рост производства вдвое, урбанизация и электрификация городов.",
	},
}

var results = []Item{
	{
		Heading:     "Рост ВВП: +400%",
		Subheading:  "1800-1900",
		Description: "Великобритания: с £350M до £2B. США: рост экономики в 15 раз. Германия: промышленный бум и индустриализация.",
	},
	{
		Heading:     "Урбанизация: 10% → 80%",
		Subheading:  "1800-2000",
		Description: "Лондон: 1M → 7M жителей. Новые промышленные города: Манчестер, Бирмингем, Детройт. Развитие инфраструктуры.",
	},
	{
		Heading:     "Производительность труда: +1500%",
		Subheading:  "1760-1900",
		Description: "Текстиль: с 1 до 40 метров/день. Сталь: рост производства в 200 раз. Снижение стоимости товаров и рост уровня жизни.",
	},
}

// IndustrialRevolution returns the four-slide deck about the Industrial Revolution.
// The content is literal, so a build failure here is a programming error.
func IndustrialRevolution() Deck {
	d, err := NewBuilder(Filename).
		PageSize(10, 7.5).
		Palette(IndustrialPalette).
		TitleSlide("ИНДУСТРИАЛЬНАЯ РЕВОЛЮЦИЯ", "Экономическая трансформация человечества").
		ContentSlide("Этапы Индустриальной Революции", stages...).
		ContentSlide("Ключевые Изобретения", inventions...).
		ContentSlide("Экономические Результаты", results...).
		Build()
	if err != nil {
		panic(err)
	}
	return d
}
