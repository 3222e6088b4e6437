package service

import "trait_tracer_backend/internal/model"

// FallbackQuestions returns the static 20-item bank used whenever live
// generation is unavailable. The bank covers the five Big Five traits in
// fixed proportion and is independent of the job.
func FallbackQuestions() []model.Question {
	bank := []model.Question{
		{
			ID:       1,
			Question: "When working on a complex project, I prefer to:",
			Options: []string{
				"Break it down into smaller, manageable tasks",
				"Dive in and figure it out as I go",
				"Research extensively before starting",
				"Collaborate with others to brainstorm solutions",
			},
			Category: "problem-solving",
			Trait:    model.TraitConscientiousness,
			Scoring:  map[string]int{"A": 4, "B": 2, "C": 3, "D": 3},
		},
		{
			ID:       2,
			Question: "In team meetings, I typically:",
			Options: []string{
				"Lead the discussion and drive decisions",
				"Listen carefully and contribute when asked",
				"Ask clarifying questions to understand better",
				"Offer creative solutions and alternatives",
			},
			Category: "communication",
			Trait:    model.TraitExtraversion,
			Scoring:  map[string]int{"A": 4, "B": 2, "C": 3, "D": 3},
		},
		{
			ID:       3,
			Question: "When facing a tight deadline, I:",
			Options: []string{
				"Work systematically through my planned approach",
				"Adapt quickly and change my strategy as needed",
				"Focus intensely and eliminate all distractions",
				"Seek help from colleagues to divide the work",
			},
			Category: "stress-management",
			Trait:    model.TraitNeuroticism,
			Scoring:  map[string]int{"A": 4, "B": 3, "C": 3, "D": 2},
		},
		{
			ID:       4,
			Question: "I am most motivated by:",
			Options: []string{
				"Achieving personal goals and recognition",
				"Helping others succeed and grow",
				"Learning new skills and knowledge",
				"Creating innovative solutions",
			},
			Category: "motivation",
			Trait:    model.TraitOpenness,
			Scoring:  map[string]int{"A": 2, "B": 3, "C": 4, "D": 4},
		},
		{
			ID:       5,
			Question: "When receiving feedback, I:",
			Options: []string{
				"Appreciate direct, constructive criticism",
				"Prefer feedback delivered gently and privately",
				"Want specific examples and actionable steps",
				"Value feedback that helps me grow",
			},
			Category: "feedback",
			Trait:    model.TraitAgreeableness,
			Scoring:  map[string]int{"A": 3, "B": 2, "C": 4, "D": 4},
		},
		{
			ID:       6,
			Question: "My ideal work environment is:",
			Options: []string{
				"Structured with clear processes and expectations",
				"Flexible with room for creativity and innovation",
				"Collaborative with frequent team interaction",
				"Independent with minimal supervision",
			},
			Category: "work-style",
			Trait:    model.TraitConscientiousness,
			Scoring:  map[string]int{"A": 4, "B": 3, "C": 3, "D": 2},
		},
		{
			ID:       7,
			Question: "When learning new technology, I:",
			Options: []string{
				"Read documentation thoroughly before experimenting",
				"Jump in and learn by trial and error",
				"Watch tutorials and follow along step by step",
				"Find a mentor or colleague to guide me",
			},
			Category: "learning",
			Trait:    model.TraitOpenness,
			Scoring:  map[string]int{"A": 3, "B": 4, "C": 3, "D": 2},
		},
		{
			ID:       8,
			Question: "In conflict situations, I tend to:",
			Options: []string{
				"Address issues directly and find solutions",
				"Avoid confrontation and seek compromise",
				"Listen to all sides before making decisions",
				"Focus on maintaining team harmony",
			},
			Category: "conflict-resolution",
			Trait:    model.TraitAgreeableness,
			Scoring:  map[string]int{"A": 3, "B": 2, "C": 4, "D": 4},
		},
		{
			ID:       9,
			Question: "I perform best when:",
			Options: []string{
				"Working alone with minimal interruptions",
				"Collaborating closely with team members",
				"Having variety in my daily tasks",
				"Following established routines and procedures",
			},
			Category: "work-preference",
			Trait:    model.TraitExtraversion,
			Scoring:  map[string]int{"A": 2, "B": 4, "C": 3, "D": 3},
		},
		{
			ID:       10,
			Question: "When starting a new project, I:",
			Options: []string{
				"Create detailed plans and timelines",
				"Start with the most interesting or challenging part",
				"Research similar projects and best practices",
				"Discuss approach and gather team input",
			},
			Category: "project-management",
			Trait:    model.TraitConscientiousness,
			Scoring:  map[string]int{"A": 4, "B": 2, "C": 3, "D": 3},
		},
		{
			ID:       11,
			Question: "My approach to risk-taking is:",
			Options: []string{
				"Calculated - I assess pros and cons carefully",
				"Conservative - I prefer proven solutions",
				"Adventurous - I'm willing to try new approaches",
				"Collaborative - I seek team consensus on risks",
			},
			Category: "risk-management",
			Trait:    model.TraitOpenness,
			Scoring:  map[string]int{"A": 3, "B": 2, "C": 4, "D": 3},
		},
		{
			ID:       12,
			Question: "When facing uncertainty, I:",
			Options: []string{
				"Create contingency plans for different scenarios",
				"Stay calm and adapt as situations develop",
				"Seek additional information to reduce uncertainty",
				"Rely on past experience to guide decisions",
			},
			Category: "uncertainty",
			Trait:    model.TraitNeuroticism,
			Scoring:  map[string]int{"A": 4, "B": 3, "C": 3, "D": 2},
		},
		{
			ID:       13,
			Question: "I am most energized by:",
			Options: []string{
				"Solving complex technical challenges",
				"Mentoring and helping colleagues",
				"Exploring new ideas and possibilities",
				"Achieving concrete, measurable results",
			},
			Category: "energy-source",
			Trait:    model.TraitOpenness,
			Scoring:  map[string]int{"A": 4, "B": 3, "C": 4, "D": 3},
		},
		{
			ID:       14,
			Question: "In group discussions, I:",
			Options: []string{
				"Share my thoughts and opinions openly",
				"Listen more than I speak",
				"Ask questions to understand different perspectives",
				"Try to find common ground among different views",
			},
			Category: "group-dynamics",
			Trait:    model.TraitExtraversion,
			Scoring:  map[string]int{"A": 4, "B": 2, "C": 3, "D": 3},
		},
		{
			ID:       15,
			Question: "When prioritizing tasks, I:",
			Options: []string{
				"Focus on urgent deadlines first",
				"Tackle the most important strategic items",
				"Start with tasks I enjoy or find interesting",
				"Balance urgent needs with long-term goals",
			},
			Category: "prioritization",
			Trait:    model.TraitConscientiousness,
			Scoring:  map[string]int{"A": 3, "B": 4, "C": 2, "D": 4},
		},
		{
			ID:       16,
			Question: "My communication style is:",
			Options: []string{
				"Direct and concise",
				"Detailed and thorough",
				"Friendly and personable",
				"Diplomatic and considerate",
			},
			Category: "communication-style",
			Trait:    model.TraitAgreeableness,
			Scoring:  map[string]int{"A": 2, "B": 3, "C": 3, "D": 4},
		},
		{
			ID:       17,
			Question: "When working with difficult people, I:",
			Options: []string{
				"Stay professional and focus on work objectives",
				"Try to understand their perspective and find common ground",
				"Set clear boundaries and expectations",
				"Seek mediation or manager support when needed",
			},
			Category: "interpersonal",
			Trait:    model.TraitAgreeableness,
			Scoring:  map[string]int{"A": 3, "B": 4, "C": 3, "D": 2},
		},
		{
			ID:       18,
			Question: "Innovation in my work comes from:",
			Options: []string{
				"Systematic analysis and methodical improvements",
				"Creative brainstorming and experimentation",
				"Learning from others and adapting best practices",
				"Combining existing ideas in new ways",
			},
			Category: "innovation",
			Trait:    model.TraitOpenness,
			Scoring:  map[string]int{"A": 3, "B": 4, "C": 3, "D": 4},
		},
		{
			ID:       19,
			Question: "Under pressure, I:",
			Options: []string{
				"Become more focused and productive",
				"Take time to breathe and stay calm",
				"Break down problems into smaller pieces",
				"Seek support and input from others",
			},
			Category: "pressure-response",
			Trait:    model.TraitNeuroticism,
			Scoring:  map[string]int{"A": 3, "B": 4, "C": 4, "D": 2},
		},
		{
			ID:       20,
			Question: "Success in my career means:",
			Options: []string{
				"Achieving leadership positions and recognition",
				"Making a positive impact on others",
				"Continuously learning and growing",
				"Building something meaningful and lasting",
			},
			Category: "career-values",
			Trait:    model.TraitOpenness,
			Scoring:  map[string]int{"A": 2, "B": 4, "C": 4, "D": 4},
		},
	}
	return bank
}
