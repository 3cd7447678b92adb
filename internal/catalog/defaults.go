package catalog

import "life_score_backend/internal/model"

// Default returns the shipped configuration tables. Content mirrors the
// clinical questionnaire set; tests use their own fixtures.
func Default() *Registry {
	return NewRegistry(Data{
		Assessments:      defaultAssessments,
		CategoryPillar:   defaultCategoryPillar,
		SymptomVectors:   defaultSymptomVectors,
		PenaltyMatrix:    defaultPenaltyMatrix,
		VectorBiomarkers: defaultVectorBiomarkers,
	})
}

var defaultCategoryPillar = map[string]model.Pillar{
	"Symptom Severity":     model.PillarBody,
	"Vitality & Drive":     model.PillarBody,
	"Exercise & Lifestyle": model.PillarLifestyle,
	"Nutrition":            model.PillarLifestyle,
	"Sleep Quality":        model.PillarLifestyle,
	"Sleep Continuity":     model.PillarLifestyle,
	"Daytime Function":     model.PillarMind,
	"Stress & Cortisol":    model.PillarMind,
	"Mood & Focus":         model.PillarMind,
	"Skin Health":          model.PillarAesthetics,
	"Skin Habits":          model.PillarAesthetics,
	"Age Factor":           model.PillarBody,
}

var defaultAssessments = []Assessment{
	{
		Key:         "testosterone",
		Title:       "Testosterone Assessment",
		Description: "Screens for symptoms and lifestyle factors associated with low testosterone.",
		Gender:      model.GenderMale,
		Questions: []Question{
			{
				ID:    "testosterone_q_dob",
				Type:  TypeDOB,
				Label: "What is your date of birth?",
				Scoring: &ScoringRule{
					Category:    "Age Factor",
					Weight:      1,
					Calculation: CalcAgeFromDOB,
					AgeScores: map[string]float64{
						"18-25": 9, "26-35": 8, "36-45": 6, "46-55": 5, "56-65": 4, "66-75": 3, "76+": 2,
					},
				},
			},
			{
				ID:    "testosterone_q1",
				Type:  TypeMultiselect,
				Label: "Which of the following symptoms apply to you?",
				Options: []Option{
					{Value: "fatigue", Label: "Fatigue or low energy"},
					{Value: "low_libido", Label: "Low libido"},
					{Value: "muscle_loss", Label: "Loss of muscle mass"},
					{Value: "brain_fog", Label: "Brain fog"},
					{Value: "irritability", Label: "Irritability or mood swings"},
					{Value: NoneOption, Label: "None of the above"},
				},
				Scoring: &ScoringRule{
					Category: "Symptom Severity",
					Weight:   3,
					Answers: map[string]float64{
						"fatigue": 2, "low_libido": 2, "muscle_loss": 2, "brain_fog": 2, "irritability": 2, NoneOption: 9,
					},
				},
				CapturesSymptoms: true,
				SymptomCategory:  "Hormonal",
			},
			{
				ID:    "testosterone_q1_severity",
				Type:  TypeRadio,
				Label: "How severe are these symptoms?",
				Options: []Option{
					{Value: "Mild", Label: "Mild"},
					{Value: "Moderate", Label: "Moderate"},
					{Value: "Severe", Label: "Severe"},
				},
			},
			{
				ID:    "testosterone_q1_frequency",
				Type:  TypeRadio,
				Label: "How often do you experience them?",
				Options: []Option{
					{Value: "Monthly", Label: "A few times a month"},
					{Value: "Weekly", Label: "A few times a week"},
					{Value: "Daily", Label: "Daily"},
				},
			},
			{
				ID:    "testosterone_q2",
				Type:  TypeRadio,
				Label: "How often do you engage in resistance training?",
				Options: []Option{
					{Value: "never", Label: "Never"},
					{Value: "rarely", Label: "Rarely"},
					{Value: "weekly", Label: "1-2 times per week"},
					{Value: "frequent", Label: "3+ times per week"},
				},
				Scoring: &ScoringRule{
					Category: "Exercise & Lifestyle",
					Weight:   2.5,
					Answers:  map[string]float64{"never": 2, "rarely": 4, "weekly": 7, "frequent": 9},
				},
			},
			{
				ID:    "testosterone_q3",
				Type:  TypeRadio,
				Label: "How would you rate your overall drive and motivation?",
				Options: []Option{
					{Value: "low", Label: "Low"},
					{Value: "declining", Label: "Noticeably declining"},
					{Value: "stable", Label: "Stable"},
					{Value: "high", Label: "High"},
				},
				Scoring: &ScoringRule{
					Category: "Vitality & Drive",
					Weight:   2,
					Answers:  map[string]float64{"low": 2, "declining": 4, "stable": 7, "high": 9},
				},
			},
		},
	},
	{
		Key:         "sleep",
		Title:       "Sleep Assessment",
		Description: "Evaluates sleep quality, continuity and daytime function.",
		Questions: []Question{
			{
				ID:    "sleep_q1",
				Type:  TypeRadio,
				Label: "How many hours of sleep do you usually get?",
				Options: []Option{
					{Value: "lt5", Label: "Less than 5"},
					{Value: "5-6", Label: "5 to 6"},
					{Value: "7-8", Label: "7 to 8"},
					{Value: "gt8", Label: "More than 8"},
				},
				Scoring: &ScoringRule{
					Category: "Sleep Quality",
					Weight:   2.5,
					Answers:  map[string]float64{"lt5": 2, "5-6": 4, "7-8": 9, "gt8": 7},
				},
			},
			{
				ID:    "sleep_q2",
				Type:  TypeRadio,
				Label: "How often do you wake up during the night?",
				Options: []Option{
					{Value: "often", Label: "Three or more times"},
					{Value: "sometimes", Label: "Once or twice"},
					{Value: "rarely", Label: "Rarely"},
				},
				Scoring: &ScoringRule{
					Category: "Sleep Continuity",
					Weight:   2,
					Answers:  map[string]float64{"often": 2, "sometimes": 5, "rarely": 9},
				},
			},
			{
				ID:    "sleep_q3",
				Type:  TypeMultiselect,
				Label: "Do you experience any of the following?",
				Options: []Option{
					{Value: "insomnia", Label: "Difficulty falling asleep"},
					{Value: "daytime_sleepiness", Label: "Daytime sleepiness"},
					{Value: "snoring", Label: "Loud snoring"},
					{Value: "restless_sleep", Label: "Restless, unrefreshing sleep"},
					{Value: NoneOption, Label: "None of the above"},
				},
				Scoring: &ScoringRule{
					Category: "Daytime Function",
					Weight:   2,
					Answers: map[string]float64{
						"insomnia": 2, "daytime_sleepiness": 2, "snoring": 3, "restless_sleep": 2, NoneOption: 9,
					},
				},
				CapturesSymptoms: true,
				SymptomCategory:  "Sleep",
			},
			{
				ID:    "sleep_q3_severity",
				Type:  TypeRadio,
				Label: "How severe are these issues?",
				Options: []Option{
					{Value: "Mild", Label: "Mild"},
					{Value: "Moderate", Label: "Moderate"},
					{Value: "Severe", Label: "Severe"},
				},
			},
			{
				ID:    "sleep_q3_frequency",
				Type:  TypeRadio,
				Label: "How often do they occur?",
				Options: []Option{
					{Value: "Monthly", Label: "A few times a month"},
					{Value: "Weekly", Label: "A few times a week"},
					{Value: "Daily", Label: "Every night"},
				},
			},
		},
	},
	{
		Key:         "stress",
		Title:       "Stress & Resilience Assessment",
		Description: "Measures stress load, mood and cognitive focus.",
		Questions: []Question{
			{
				ID:    "stress_q1",
				Type:  TypeRadio,
				Label: "How would you describe your day-to-day stress level?",
				Options: []Option{
					{Value: "overwhelming", Label: "Overwhelming"},
					{Value: "high", Label: "High"},
					{Value: "manageable", Label: "Manageable"},
					{Value: "low", Label: "Low"},
				},
				Scoring: &ScoringRule{
					Category: "Stress & Cortisol",
					Weight:   3,
					Answers:  map[string]float64{"overwhelming": 1, "high": 3, "manageable": 7, "low": 9},
				},
			},
			{
				ID:    "stress_q2",
				Type:  TypeMultiselect,
				Label: "Which of the following do you experience?",
				Options: []Option{
					{Value: "anxiety", Label: "Anxiety"},
					{Value: "low_mood", Label: "Persistently low mood"},
					{Value: "poor_focus", Label: "Difficulty concentrating"},
					{Value: "palpitations", Label: "Heart palpitations"},
					{Value: NoneOption, Label: "None of the above"},
				},
				Scoring: &ScoringRule{
					Category: "Mood & Focus",
					Weight:   2.5,
					Answers: map[string]float64{
						"anxiety": 2, "low_mood": 2, "poor_focus": 3, "palpitations": 2, NoneOption: 9,
					},
				},
				CapturesSymptoms: true,
				SymptomCategory:  "Mental Health",
			},
			{
				ID:    "stress_q2_severity",
				Type:  TypeRadio,
				Label: "How severe are these experiences?",
				Options: []Option{
					{Value: "Mild", Label: "Mild"},
					{Value: "Moderate", Label: "Moderate"},
					{Value: "Severe", Label: "Severe"},
				},
			},
			{
				ID:    "stress_q2_frequency",
				Type:  TypeRadio,
				Label: "How often do they occur?",
				Options: []Option{
					{Value: "Monthly", Label: "A few times a month"},
					{Value: "Weekly", Label: "A few times a week"},
					{Value: "Daily", Label: "Daily"},
				},
			},
			{
				ID:    "stress_q3",
				Type:  TypeRadio,
				Label: "How often do you practice any form of relaxation or mindfulness?",
				Options: []Option{
					{Value: "never", Label: "Never"},
					{Value: "occasionally", Label: "Occasionally"},
					{Value: "regularly", Label: "Regularly"},
				},
				Scoring: &ScoringRule{
					Category: "Stress & Cortisol",
					Weight:   1.5,
					Answers:  map[string]float64{"never": 3, "occasionally": 6, "regularly": 9},
				},
			},
		},
	},
	{
		Key:         "skin",
		Title:       "Skin Assessment",
		Description: "Evaluates skin health and care habits.",
		Questions: []Question{
			{
				ID:    "skin_q1",
				Type:  TypeRadio,
				Label: "How would you describe your skin overall?",
				Options: []Option{
					{Value: "problematic", Label: "Problematic"},
					{Value: "inconsistent", Label: "Good days and bad days"},
					{Value: "healthy", Label: "Generally healthy"},
				},
				Scoring: &ScoringRule{
					Category: "Skin Health",
					Weight:   3,
					Answers:  map[string]float64{"problematic": 2, "inconsistent": 5, "healthy": 9},
				},
			},
			{
				ID:    "skin_q2",
				Type:  TypeMultiselect,
				Label: "Do any of the following affect your skin?",
				Options: []Option{
					{Value: "acne", Label: "Acne or frequent breakouts"},
					{Value: "dryness", Label: "Dryness or flaking"},
					{Value: "rashes", Label: "Rashes or irritation"},
					{Value: "hair_thinning", Label: "Hair thinning"},
					{Value: NoneOption, Label: "None of the above"},
				},
				Scoring: &ScoringRule{
					Category: "Skin Health",
					Weight:   2,
					Answers: map[string]float64{
						"acne": 3, "dryness": 4, "rashes": 3, "hair_thinning": 3, NoneOption: 9,
					},
				},
				CapturesSymptoms: true,
				SymptomCategory:  "Dermatological",
			},
			{
				ID:    "skin_q2_severity",
				Type:  TypeRadio,
				Label: "How severe are these issues?",
				Options: []Option{
					{Value: "Mild", Label: "Mild"},
					{Value: "Moderate", Label: "Moderate"},
					{Value: "Severe", Label: "Severe"},
				},
			},
			{
				ID:    "skin_q2_frequency",
				Type:  TypeRadio,
				Label: "How often do they occur?",
				Options: []Option{
					{Value: "Monthly", Label: "A few times a month"},
					{Value: "Weekly", Label: "A few times a week"},
					{Value: "Daily", Label: "Constantly"},
				},
			},
			{
				ID:    "skin_q3",
				Type:  TypeRadio,
				Label: "Do you use sun protection?",
				Options: []Option{
					{Value: "never", Label: "Never"},
					{Value: "sometimes", Label: "Sometimes"},
					{Value: "daily", Label: "Daily"},
				},
				Scoring: &ScoringRule{
					Category: "Skin Habits",
					Weight:   1.5,
					Answers:  map[string]float64{"never": 2, "sometimes": 5, "daily": 9},
				},
			},
		},
	},
}

var defaultSymptomVectors = map[string][]string{
	"fatigue":            {"Energy", "Hormones"},
	"low_libido":         {"Libido", "Hormones"},
	"muscle_loss":        {"Strength", "Hormones"},
	"brain_fog":          {"Cognitive Health", "Energy"},
	"irritability":       {"Cognitive Health", "Hormones"},
	"insomnia":           {"Sleep"},
	"daytime_sleepiness": {"Sleep", "Energy"},
	"snoring":            {"Sleep", "Heart Health"},
	"restless_sleep":     {"Sleep"},
	"anxiety":            {"Cognitive Health"},
	"low_mood":           {"Cognitive Health", "Hormones"},
	"poor_focus":         {"Cognitive Health"},
	"palpitations":       {"Heart Health"},
	"acne":               {"Skin", "Hormones"},
	"dryness":            {"Skin"},
	"rashes":             {"Skin"},
	"hair_thinning":      {"Skin", "Hormones"},
}

// Penalty grids are monotonic in both axes so frequency strictly dominates
// on a severity tie.
var defaultPenaltyMatrix = map[string]PenaltyRule{
	"Energy": {
		PillarImpact: model.PillarLifestyle,
		Penalties:    penaltyGrid(0.10, 0.15, 0.20, 0.30, 0.45, 0.60),
	},
	"Hormones": {
		PillarImpact: model.PillarBody,
		Penalties:    penaltyGrid(0.10, 0.20, 0.30, 0.40, 0.55, 0.80),
	},
	"Libido": {
		PillarImpact: model.PillarBody,
		Penalties:    penaltyGrid(0.05, 0.10, 0.15, 0.25, 0.40, 0.60),
	},
	"Strength": {
		PillarImpact: model.PillarBody,
		Penalties:    penaltyGrid(0.10, 0.15, 0.25, 0.35, 0.45, 0.65),
	},
	"Cognitive Health": {
		PillarImpact: model.PillarMind,
		Penalties:    penaltyGrid(0.10, 0.20, 0.30, 0.40, 0.55, 0.75),
	},
	"Sleep": {
		PillarImpact: model.PillarLifestyle,
		Penalties:    penaltyGrid(0.10, 0.20, 0.30, 0.40, 0.55, 0.75),
	},
	"Heart Health": {
		PillarImpact: model.PillarBody,
		Penalties:    penaltyGrid(0.20, 0.30, 0.45, 0.55, 0.75, 1.00),
	},
	"Skin": {
		PillarImpact: model.PillarAesthetics,
		Penalties:    penaltyGrid(0.05, 0.10, 0.15, 0.20, 0.30, 0.45),
	},
}

// penaltyGrid builds a 3x3 severity/frequency grid from six anchor values:
// mild monthly..weekly..daily, then severe monthly..weekly..daily, with the
// moderate row interpolated as the midpoint.
func penaltyGrid(mildM, mildW, mildD, sevM, sevW, sevD float64) map[model.Severity]map[model.Frequency]float64 {
	mid := func(a, b float64) float64 { return (a + b) / 2 }
	return map[model.Severity]map[model.Frequency]float64{
		model.SeverityMild: {
			model.FrequencyMonthly: mildM,
			model.FrequencyWeekly:  mildW,
			model.FrequencyDaily:   mildD,
		},
		model.SeverityModerate: {
			model.FrequencyMonthly: mid(mildM, sevM),
			model.FrequencyWeekly:  mid(mildW, sevW),
			model.FrequencyDaily:   mid(mildD, sevD),
		},
		model.SeveritySevere: {
			model.FrequencyMonthly: sevM,
			model.FrequencyWeekly:  sevW,
			model.FrequencyDaily:   sevD,
		},
	}
}

var defaultVectorBiomarkers = map[string][]string{
	"Energy":           {"ferritin", "vitamin_d", "vitamin_b12", "tsh"},
	"Hormones":         {"testosterone_total", "testosterone_free", "estradiol", "shbg", "dhea_s"},
	"Libido":           {"testosterone_total", "testosterone_free", "prolactin"},
	"Strength":         {"testosterone_total", "igf_1", "creatine_kinase"},
	"Cognitive Health": {"vitamin_b12", "homocysteine", "tsh", "cortisol"},
	"Sleep":            {"cortisol", "melatonin", "magnesium"},
	"Heart Health":     {"lipid_panel", "apob", "hs_crp", "homocysteine"},
	"Skin":             {"vitamin_d", "zinc", "thyroid_panel", "testosterone_total"},
}
