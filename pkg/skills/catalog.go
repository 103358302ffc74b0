package skills

// builtinCatalog returns the shipped skill definitions. The slice order
// is the registration order and therefore the matcher's tie-break order.
// Fresh values are returned on every call so no caller can alias the
// catalog of another registry.
func builtinCatalog() []*SkillDefinition {
	return []*SkillDefinition{
		{
			ID:       "study_plan",
			Category: CategoryEducation,
			Name: map[Language]string{
				LangEN: "Study Plan Builder",
				LangES: "Creador de plan de estudio",
			},
			Description: map[Language]string{
				LangEN: "Builds a phased study plan for a topic or exam, with durations and milestones.",
				LangES: "Crea un plan de estudio por fases para un tema o examen, con duraciones y metas.",
			},
			Enabled: true,
			Triggers: TriggerSpec{
				Keywords: map[Language][]string{
					LangEN: {"study plan", "learning schedule", "plan my studies", "prepare for the exam", "revision plan"},
					LangES: {"plan de estudio", "horario de estudio", "planificar mis estudios", "preparar el examen"},
				},
				MinKeywordMatches: 1,
			},
			Output: SchemaSpec{
				Kind:           SchemaJSON,
				RequiredFields: []string{"title", "duration", "phases"},
			},
			SafetyRules: []SafetyRule{
				{
					ID: "no-medical-advice",
					Description: map[Language]string{
						LangEN: "Never present the plan as medical or psychological guidance.",
						LangES: "Nunca presentar el plan como orientación médica o psicológica.",
					},
					Enforcement: EnforceWarn,
				},
			},
			Examples: []Example{
				{
					Input: map[Language]string{
						LangEN: "I need a study plan to prepare for the exam in algebra next month",
						LangES: "Necesito un plan de estudio para preparar el examen de álgebra el próximo mes",
					},
					ExpectedOutput: map[Language]string{
						LangEN: `{"title":"Algebra exam prep","duration":"4 weeks","phases":[{"name":"Foundations","weeks":2},{"name":"Practice exams","weeks":2}]}`,
						LangES: `{"title":"Preparación del examen de álgebra","duration":"4 semanas","phases":[{"name":"Fundamentos","weeks":2},{"name":"Exámenes de práctica","weeks":2}]}`,
					},
				},
			},
		},
		{
			ID:       "quiz_generator",
			Category: CategoryEducation,
			Name: map[Language]string{
				LangEN: "Quiz Generator",
				LangES: "Generador de cuestionarios",
			},
			Description: map[Language]string{
				LangEN: "Generates a practice quiz with answers for a given topic.",
				LangES: "Genera un cuestionario de práctica con respuestas para un tema dado.",
			},
			Enabled: true,
			Triggers: TriggerSpec{
				Keywords: map[Language][]string{
					LangEN: {"quiz", "test me", "practice questions", "mock test"},
					LangES: {"cuestionario", "ponme a prueba", "preguntas de práctica", "examen de práctica"},
				},
				MinKeywordMatches: 1,
			},
			Output: SchemaSpec{
				Kind:           SchemaJSON,
				RequiredFields: []string{"topic", "questions"},
			},
			SafetyRules: []SafetyRule{
				{
					ID: "no-graded-exam-content",
					Description: map[Language]string{
						LangEN: "Never reproduce questions from a live graded exam.",
						LangES: "Nunca reproducir preguntas de un examen calificado en curso.",
					},
					Enforcement: EnforceBlock,
				},
			},
			Examples: []Example{
				{
					Input: map[Language]string{
						LangEN: "Make a quiz about the French Revolution, test me with five questions",
						LangES: "Haz un cuestionario sobre la Revolución Francesa, ponme a prueba con cinco preguntas",
					},
					ExpectedOutput: map[Language]string{
						LangEN: `{"topic":"French Revolution","questions":[{"q":"In what year did the Revolution begin?","a":"1789"}]}`,
						LangES: `{"topic":"Revolución Francesa","questions":[{"q":"¿En qué año comenzó la Revolución?","a":"1789"}]}`,
					},
				},
			},
		},
		{
			ID:       "flashcards",
			Category: CategoryEducation,
			Name: map[Language]string{
				LangEN: "Flashcard Deck",
				LangES: "Mazo de tarjetas",
			},
			Description: map[Language]string{
				LangEN: "Produces a deck of question/answer flashcards for spaced repetition.",
				LangES: "Produce un mazo de tarjetas de pregunta y respuesta para repaso espaciado.",
			},
			Enabled: true,
			Triggers: TriggerSpec{
				Keywords: map[Language][]string{
					LangEN: {"flashcards", "flash cards", "memory cards", "spaced repetition"},
					LangES: {"tarjetas de memoria", "tarjetas de estudio", "fichas de repaso"},
				},
				MinKeywordMatches: 1,
			},
			Output: SchemaSpec{
				Kind:           SchemaJSON,
				RequiredFields: []string{"topic", "cards"},
			},
			SafetyRules: []SafetyRule{
				{
					ID: "cite-definitions",
					Description: map[Language]string{
						LangEN: "Definitions on cards must come from the course material, not invention.",
						LangES: "Las definiciones de las tarjetas deben provenir del material del curso, no de invención.",
					},
					Enforcement: EnforceWarn,
				},
			},
			Examples: []Example{
				{
					Input: map[Language]string{
						LangEN: "Give me flashcards for the periodic table",
						LangES: "Dame tarjetas de memoria para la tabla periódica",
					},
					ExpectedOutput: map[Language]string{
						LangEN: `{"topic":"Periodic table","cards":[{"front":"Symbol for iron","back":"Fe"}]}`,
						LangES: `{"topic":"Tabla periódica","cards":[{"front":"Símbolo del hierro","back":"Fe"}]}`,
					},
				},
			},
		},
		{
			ID:       "concept_explainer",
			Category: CategoryEducation,
			Name: map[Language]string{
				LangEN: "Concept Explainer",
				LangES: "Explicador de conceptos",
			},
			Description: map[Language]string{
				LangEN: "Explains a concept in plain language with worked examples.",
				LangES: "Explica un concepto en lenguaje sencillo con ejemplos resueltos.",
			},
			Enabled: true,
			Triggers: TriggerSpec{
				Keywords: map[Language][]string{
					LangEN: {"explain", "what is", "how does", "help me understand", "i don't understand"},
					LangES: {"explica", "qué es", "cómo funciona", "ayúdame a entender", "no entiendo"},
				},
				// Generic verbs, so one hit alone must not steal every request.
				MinKeywordMatches: 2,
			},
			Output: SchemaSpec{
				Kind: SchemaText,
			},
			SafetyRules: []SafetyRule{
				{
					ID: "age-appropriate",
					Description: map[Language]string{
						LangEN: "Explanations must stay appropriate for the learner's declared level.",
						LangES: "Las explicaciones deben ser apropiadas para el nivel declarado del estudiante.",
					},
					Enforcement: EnforceWarn,
				},
			},
			Examples: []Example{
				{
					Input: map[Language]string{
						LangEN: "Explain photosynthesis, I don't understand how does it store energy",
						LangES: "Explica la fotosíntesis, no entiendo cómo funciona el almacenamiento de energía",
					},
					ExpectedOutput: map[Language]string{
						LangEN: "Photosynthesis converts light energy into chemical energy stored as glucose...",
						LangES: "La fotosíntesis convierte la energía lumínica en energía química almacenada como glucosa...",
					},
				},
			},
		},
		{
			ID:       "progress_report",
			Category: CategorySystem,
			Name: map[Language]string{
				LangEN: "Platform Progress Report",
				LangES: "Informe de progreso de la plataforma",
			},
			Description: map[Language]string{
				LangEN: "Summarizes learner activity and platform usage for staff.",
				LangES: "Resume la actividad de los estudiantes y el uso de la plataforma para el personal.",
			},
			Enabled:       true,
			RequiresAdmin: true,
			Triggers: TriggerSpec{
				Keywords: map[Language][]string{
					LangEN: {"progress report", "usage report", "platform stats", "activity summary"},
					LangES: {"informe de progreso", "informe de uso", "estadísticas de la plataforma"},
				},
				MinKeywordMatches: 1,
			},
			Output: SchemaSpec{
				Kind:           SchemaJSON,
				RequiredFields: []string{"period", "metrics", "highlights"},
			},
			SafetyRules: []SafetyRule{
				{
					ID: "staff-only",
					Description: map[Language]string{
						LangEN: "Reports contain learner data and may only be produced for staff accounts.",
						LangES: "Los informes contienen datos de estudiantes y solo pueden producirse para cuentas del personal.",
					},
					Enforcement: EnforceBlock,
				},
				{
					ID: "aggregate-only",
					Description: map[Language]string{
						LangEN: "Metrics must be aggregated; never include a single learner's record.",
						LangES: "Las métricas deben ser agregadas; nunca incluir el registro de un solo estudiante.",
					},
					Enforcement: EnforceBlock,
				},
			},
			Examples: []Example{
				{
					Input: map[Language]string{
						LangEN: "Give me the weekly progress report with platform stats",
						LangES: "Dame el informe de progreso semanal con estadísticas de la plataforma",
					},
					ExpectedOutput: map[Language]string{
						LangEN: `{"period":"2025-W14","metrics":{"activeLearners":412},"highlights":["Algebra course completion up 9%"]}`,
						LangES: `{"period":"2025-W14","metrics":{"activeLearners":412},"highlights":["La finalización del curso de álgebra subió un 9%"]}`,
					},
				},
			},
		},
		{
			ID:       "damage_analyzer",
			Category: CategoryAnalysis,
			Name: map[Language]string{
				LangEN: "Content Damage Analyzer",
				LangES: "Analizador de daños de contenido",
			},
			Description: map[Language]string{
				LangEN: "Assesses the blast radius of a bad content rollout or data incident.",
				LangES: "Evalúa el alcance de una mala publicación de contenido o un incidente de datos.",
			},
			Enabled:       true,
			RequiresAdmin: true,
			FeatureFlag:   "DAMAGE_ANALYZER",
			Triggers: TriggerSpec{
				Keywords: map[Language][]string{
					LangEN: {"damage analysis", "analyze the damage", "assess the damage", "incident impact"},
					LangES: {"análisis de daños", "analizar los daños", "evaluar los daños", "impacto del incidente"},
				},
				MinKeywordMatches: 1,
			},
			Output: SchemaSpec{
				Kind:           SchemaJSON,
				RequiredFields: []string{"severity", "findings", "recommendation"},
			},
			SafetyRules: []SafetyRule{
				{
					ID: "admin-only",
					Description: map[Language]string{
						LangEN: "Incident analysis exposes internal state and is restricted to administrators.",
						LangES: "El análisis de incidentes expone estado interno y está restringido a administradores.",
					},
					Enforcement: EnforceBlock,
				},
			},
			Examples: []Example{
				{
					Input: map[Language]string{
						LangEN: "Run a damage analysis for the broken quiz import from last night",
						LangES: "Ejecuta un análisis de daños por la importación de cuestionarios rota de anoche",
					},
					ExpectedOutput: map[Language]string{
						LangEN: `{"severity":"medium","findings":["312 quizzes reference deleted media"],"recommendation":"Re-run the import with media included"}`,
						LangES: `{"severity":"medium","findings":["312 cuestionarios hacen referencia a medios eliminados"],"recommendation":"Repetir la importación incluyendo los medios"}`,
					},
				},
			},
		},
		{
			ID:       "essay_grader",
			Category: CategoryEducation,
			Name: map[Language]string{
				LangEN: "Essay Grader",
				LangES: "Calificador de ensayos",
			},
			Description: map[Language]string{
				LangEN: "Scores an essay against a rubric with written feedback.",
				LangES: "Califica un ensayo según una rúbrica con comentarios escritos.",
			},
			// Pending rubric calibration with the teaching staff.
			Enabled: false,
			Triggers: TriggerSpec{
				Keywords: map[Language][]string{
					LangEN: {"grade my essay", "score my essay", "essay feedback"},
					LangES: {"califica mi ensayo", "puntúa mi ensayo", "comentarios sobre mi ensayo"},
				},
				MinKeywordMatches: 1,
			},
			Output: SchemaSpec{
				Kind:           SchemaJSON,
				RequiredFields: []string{"score", "feedback"},
			},
			SafetyRules: []SafetyRule{
				{
					ID: "advisory-grade",
					Description: map[Language]string{
						LangEN: "Grades are advisory and never replace instructor marking.",
						LangES: "Las calificaciones son orientativas y nunca reemplazan la corrección del docente.",
					},
					Enforcement: EnforceWarn,
				},
			},
			Examples: []Example{
				{
					Input: map[Language]string{
						LangEN: "Grade my essay on the causes of World War I",
						LangES: "Califica mi ensayo sobre las causas de la Primera Guerra Mundial",
					},
					ExpectedOutput: map[Language]string{
						LangEN: `{"score":82,"feedback":"Strong thesis; the second argument needs a primary source."}`,
						LangES: `{"score":82,"feedback":"Tesis sólida; el segundo argumento necesita una fuente primaria."}`,
					},
				},
			},
		},
	}
}
