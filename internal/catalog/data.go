package catalog

import "coaching-offers-api/internal/models"

func goalPtr(g models.Goal) *models.Goal { return &g }

func levelPtr(l models.Level) *models.Level { return &l }

func daysPtr(d int) *int { return &d }

func placePtr(p models.TrainingPlace) *models.TrainingPlace { return &p }

// plans is the quiz-facing catalog. Order is presentation order and also the
// tie-break order for the recommendation scorer.
var plans = []models.Plan{
	{
		Slug:          "recomp-3d-base",
		Title:         "Recomposición 3 días",
		Tagline:       "Tu primer ciclo serio de entrenamiento",
		Description:   "Rutina de cuerpo completo en 3 días para perder grasa sin vivir en el gimnasio.",
		Goal:          models.GoalDefinicion,
		Level:         models.LevelPrincipiante,
		DaysPerWeek:   3,
		TrainingPlace: models.PlaceGym,
		Includes: []string{
			"Rutina full-body de 3 días",
			"Progresiones semana a semana",
			"Guía de técnica en video",
		},
		ForWho: []string{
			"Arrancás de cero o volvés después de un parate",
			"Tenés poco tiempo y querés resultados visibles",
		},
		NotFor: []string{
			"Ya entrenás hace años con buena técnica",
		},
		FAQs: []models.FAQ{
			{Question: "¿Necesito suplementos?", Answer: "No. Con comida real alcanza para esta etapa."},
			{Question: "¿Cuánto dura cada sesión?", Answer: "Entre 45 y 60 minutos."},
		},
		PriceLabel:      "Desde $25.000/mes",
		WhatsAppMessage: "Hola Pepu, quiero empezar con Recomposición 3 días",
		Featured:        true,
	},
	{
		Slug:          "definicion-casa-4d",
		Title:         "Definición en casa 4 días",
		Tagline:       "Marcarte entrenando en tu living",
		Description:   "Plan de definición con bandas y peso corporal, pensado para 4 días por semana en casa.",
		Goal:          models.GoalDefinicion,
		Level:         models.LevelIntermedio,
		DaysPerWeek:   4,
		TrainingPlace: models.PlaceCasa,
		Includes: []string{
			"Rutina de 4 días con material mínimo",
			"Circuitos metabólicos semanales",
			"Pautas de déficit calórico",
		},
		ForWho: []string{
			"Entrenás en casa y querés bajar el porcentaje graso",
		},
		NotFor: []string{
			"Buscás máximo desarrollo muscular con cargas pesadas",
		},
		FAQs: []models.FAQ{
			{Question: "¿Qué equipamiento necesito?", Answer: "Un par de bandas y, si tenés, un juego de mancuernas."},
		},
		PriceLabel:      "Desde $25.000/mes",
		WhatsAppMessage: "Hola Pepu, me interesa Definición en casa 4 días",
	},
	{
		Slug:          "definicion-gym-5d",
		Title:         "Definición avanzada 5 días",
		Tagline:       "El último 10% es el más difícil",
		Description:   "Bloque de definición de alta frecuencia para llegar afilado, manteniendo fuerza.",
		Goal:          models.GoalDefinicion,
		Level:         models.LevelAvanzado,
		DaysPerWeek:   5,
		TrainingPlace: models.PlaceGym,
		Includes: []string{
			"Split de 5 días con prioridad de puntos débiles",
			"Protocolo de cardio por fases",
			"Ajustes quincenales de volumen",
		},
		ForWho: []string{
			"Venís entrenando duro y querés definir sin perder masa",
		},
		NotFor: []string{
			"Es tu primer año de entrenamiento",
		},
		FAQs: []models.FAQ{
			{Question: "¿Sirve para una sesión de fotos?", Answer: "Sí, el bloque cierra con una semana de puesta a punto."},
		},
		PriceLabel:      "Desde $32.000/mes",
		WhatsAppMessage: "Hola Pepu, quiero info de Definición avanzada 5 días",
	},
	{
		Slug:          "volumen-gym-4d",
		Title:         "Volumen limpio 4 días",
		Tagline:       "Masa muscular sin tapar el trabajo hecho",
		Description:   "Torso-pierna de 4 días con sobrecarga progresiva y superávit controlado.",
		Goal:          models.GoalVolumen,
		Level:         models.LevelIntermedio,
		DaysPerWeek:   4,
		TrainingPlace: models.PlaceGym,
		Includes: []string{
			"Split torso-pierna de 4 días",
			"Planilla de cargas y repeticiones",
			"Pautas de superávit limpio",
		},
		ForWho: []string{
			"Querés subir de peso sin acumular grasa de más",
		},
		NotFor: []string{
			"No podés sostener 4 días fijos de gimnasio",
		},
		FAQs: []models.FAQ{
			{Question: "¿Cuánto peso voy a subir?", Answer: "Apuntamos a 1-2 kg por mes, mayormente magro."},
		},
		PriceLabel:      "Desde $28.000/mes",
		WhatsAppMessage: "Hola Pepu, me interesa Volumen limpio 4 días",
		Featured:        true,
	},
	{
		Slug:          "volumen-casa-3d",
		Title:         "Volumen en casa 3 días",
		Tagline:       "Construir base sin pisar un gimnasio",
		Description:   "Fuerza y masa con mancuernas y bandas, en 3 sesiones semanales cortas.",
		Goal:          models.GoalVolumen,
		Level:         models.LevelPrincipiante,
		DaysPerWeek:   3,
		TrainingPlace: models.PlaceCasa,
		Includes: []string{
			"Rutina full-body de 3 días para casa",
			"Variantes según tu material disponible",
			"Guía de comidas para subir de peso",
		},
		ForWho: []string{
			"Arrancás en casa y te cuesta subir de peso",
		},
		NotFor: []string{
			"Tenés acceso a gimnasio completo y 4+ días",
		},
		FAQs: []models.FAQ{
			{Question: "¿Alcanza con peso corporal?", Answer: "Para los primeros meses sí; después conviene sumar bandas o mancuernas."},
		},
		PriceLabel:      "Desde $22.000/mes",
		WhatsAppMessage: "Hola Pepu, quiero empezar con Volumen en casa 3 días",
	},
	{
		Slug:          "rendimiento-gym-5d",
		Title:         "Rendimiento 5 días",
		Tagline:       "Fuerza y potencia para competir",
		Description:   "Bloques de fuerza, potencia y accesorios para deportistas que entrenan 5 días.",
		Goal:          models.GoalRendimiento,
		Level:         models.LevelAvanzado,
		DaysPerWeek:   5,
		TrainingPlace: models.PlaceGym,
		Includes: []string{
			"Periodización en bloques de 4 semanas",
			"Trabajo de potencia y pliometría",
			"Tests de progreso mensuales",
		},
		ForWho: []string{
			"Competís o entrenás para un deporte específico",
		},
		NotFor: []string{
			"Tu único objetivo es el físico",
		},
		FAQs: []models.FAQ{
			{Question: "¿Se adapta a mi deporte?", Answer: "Sí, los accesorios se eligen según tu disciplina."},
		},
		PriceLabel:      "Desde $35.000/mes",
		WhatsAppMessage: "Hola Pepu, quiero info de Rendimiento 5 días",
	},
	{
		Slug:          "rendimiento-hibrido-4d",
		Title:         "Rendimiento híbrido 4 días",
		Tagline:       "Fuerte y resistente a la vez",
		Description:   "Combina fuerza y acondicionamiento en 4 días para rendir mejor sin romperte.",
		Goal:          models.GoalRendimiento,
		Level:         models.LevelIntermedio,
		DaysPerWeek:   4,
		TrainingPlace: models.PlaceGym,
		Includes: []string{
			"2 días de fuerza + 2 días de acondicionamiento",
			"Gestión de fatiga semanal",
			"Protocolos de movilidad",
		},
		ForWho: []string{
			"Querés rendir en tu deporte y verte bien",
		},
		NotFor: []string{
			"Buscás especialización pura en fuerza máxima",
		},
		FAQs: []models.FAQ{
			{Question: "¿Puedo correr además del plan?", Answer: "Sí, el acondicionamiento se ajusta a tu volumen de carrera."},
		},
		PriceLabel:      "Desde $30.000/mes",
		WhatsAppMessage: "Hola Pepu, me interesa Rendimiento híbrido 4 días",
	},
}

// programas is the pricing-tier catalog, one entry per tier, in display order.
var programas = []models.Programa{
	{
		Slug:     "programa-inicio",
		Tier:     models.TierInicio,
		Title:    "PROGRAMA INICIO",
		Subtitle: "Tu punto de partida con estructura real",
		DescriptionLong: "Un mes de rutina armada según tu nivel y tu material disponible.\n" +
			"Ideal para ordenarte y dejar de improvisar entrenamientos sueltos.\n" +
			"Sin seguimiento personalizado, pero con toda la estructura para arrancar.\n" +
			"Al terminar el mes podés renovar o pasar a un programa con seguimiento.",
		Includes: []string{
			"Rutina mensual según nivel y material",
			"Videos de técnica de cada ejercicio",
			"Acceso a la comunidad privada",
		},
		IdealFor: []string{
			"Querés probar el método sin comprometerte a largo plazo",
			"Te manejás bien solo y solo necesitás el plan",
		},
		Limits:   "No incluye seguimiento ni ajustes durante el mes.",
		CTALabel: "Empezar ahora",
		Pricing:  models.Pricing{ARS: "$18.000", Note: "Pago único, acceso por 30 días"},
	},
	{
		Slug:     "programa-base",
		Tier:     models.TierBase,
		Title:    "PROGRAMA BASE",
		Subtitle: "Entrenamiento guiado mes a mes",
		DescriptionLong: "Plan de entrenamiento renovado cada mes según tu progreso.\n" +
			"Revisión mensual de cargas, técnica y adherencia.\n" +
			"Acceso directo para dudas puntuales durante la semana.\n" +
			"Es el programa para sostener resultados durante todo el año.",
		Includes: []string{
			"Plan mensual personalizado",
			"Revisión de videos de técnica",
			"Ajustes de cargas cada 4 semanas",
			"Soporte por WhatsApp en horario hábil",
		},
		IdealFor: []string{
			"Ya entrenás y querés progresar con dirección",
			"Necesitás que alguien mire tu técnica de verdad",
		},
		ResultExpected: "Progreso medible de fuerza y composición corporal en 12 semanas.",
		CTALabel:       "Sumarme al programa",
		Pricing:        models.Pricing{ARS: "$28.000", USD: "u$s 30", Note: "Por mes, sin permanencia mínima"},
		Badges:         []string{"Más elegido"},
	},
	{
		Slug:     "programa-transformacion",
		Tier:     models.TierTransformacion,
		Title:    "PROGRAMA TRANSFORMACIÓN",
		Subtitle: "Entrenamiento + nutrición en un solo proceso",
		DescriptionLong: "Proceso de 12 semanas con entrenamiento y plan de alimentación integrados.\n" +
			"Seguimiento quincenal con fotos, medidas y ajustes de ambos planes.\n" +
			"Pensado para un cambio físico visible con fecha de inicio y de fin.\n" +
			"Cupos limitados por camada para sostener la calidad del seguimiento.",
		Includes: []string{
			"Plan de entrenamiento y nutrición integrados",
			"Check-in quincenal con fotos y medidas",
			"Ajustes ilimitados durante las 12 semanas",
			"Soporte prioritario por WhatsApp",
		},
		IdealFor: []string{
			"Querés un antes y después concreto en 3 meses",
			"Necesitás que la comida deje de ser el cuello de botella",
		},
		ResultExpected: "Cambio visible de composición corporal al cierre de las 12 semanas.",
		ConversionFlow: "Entrevista breve por WhatsApp antes de confirmar el cupo.",
		CTALabel:       "Quiero mi transformación",
		Pricing:        models.Pricing{ARS: "$65.000", USD: "u$s 70", Note: "Proceso completo de 12 semanas"},
		Badges:         []string{"Cupos limitados"},
	},
	{
		Slug:     "mentoria-1-1",
		Tier:     models.TierMentoria,
		Title:    "MENTORÍA 1:1",
		Subtitle: "Acompañamiento total, sin intermediarios",
		DescriptionLong: "Trabajo uno a uno conmigo, con contacto directo todos los días.\n" +
			"Entrenamiento, nutrición y hábitos revisados semana a semana.\n" +
			"Videollamada mensual de planificación y revisión de objetivos.\n" +
			"Es el formato para quien quiere el camino más corto posible.",
		Includes: []string{
			"Contacto directo diario por WhatsApp",
			"Plan de entrenamiento, nutrición y hábitos",
			"Videollamada mensual 1:1",
			"Prioridad absoluta en respuestas y ajustes",
		},
		IdealFor: []string{
			"Querés el máximo nivel de acompañamiento",
			"Tu agenda exige un plan que se adapte semana a semana",
		},
		Limits:         "Cupo máximo de 10 personas en simultáneo.",
		ConversionFlow: "Llamada de admisión previa para confirmar que encajamos.",
		CTALabel:       "Aplicar a la mentoría",
		Pricing:        models.Pricing{USD: "u$s 150", Note: "Por mes, admisión previa"},
		Badges:         []string{"Solo 10 cupos"},
	},
}

// quizRules is the ordered override table of the recommendation engine.
// Order is priority: the first structural match wins, even when a later rule
// is more specific.
var quizRules = []models.QuizRule{
	{
		ID:       "definicion-casa-4",
		When:     models.QuizAnswers{Goal: goalPtr(models.GoalDefinicion), TrainingPlace: placePtr(models.PlaceCasa), DaysPerWeek: daysPtr(4)},
		PlanSlug: "definicion-casa-4d",
	},
	{
		ID:       "definicion-principiante",
		When:     models.QuizAnswers{Goal: goalPtr(models.GoalDefinicion), Level: levelPtr(models.LevelPrincipiante)},
		PlanSlug: "recomp-3d-base",
	},
	{
		ID:       "volumen-principiante",
		When:     models.QuizAnswers{Goal: goalPtr(models.GoalVolumen), Level: levelPtr(models.LevelPrincipiante)},
		PlanSlug: "volumen-casa-3d",
	},
	{
		ID:       "rendimiento-avanzado",
		When:     models.QuizAnswers{Goal: goalPtr(models.GoalRendimiento), Level: levelPtr(models.LevelAvanzado)},
		PlanSlug: "rendimiento-gym-5d",
	},
	{
		ID:       "volumen-gym",
		When:     models.QuizAnswers{Goal: goalPtr(models.GoalVolumen), TrainingPlace: placePtr(models.PlaceGym)},
		PlanSlug: "volumen-gym-4d",
	},
	{
		ID:       "definicion-avanzado",
		When:     models.QuizAnswers{Goal: goalPtr(models.GoalDefinicion), Level: levelPtr(models.LevelAvanzado)},
		PlanSlug: "definicion-gym-5d",
	},
}
