package globe

// Summary condenses one build for the dataset event.
type Summary struct {
	Countries    int      `json:"countries"`
	Red          int      `json:"red"`
	Amber        int      `json:"amber"`
	Green        int      `json:"green"`
	AverageScore float64  `json:"average_score"`
	MissingFiles []string `json:"missing_files"`
}

// Summarize counts countries per tier and carries the missing files of diag.
func Summarize(records []CountryRecord, diag Diagnostic) Summary {
	s := Summary{Countries: len(records), MissingFiles: diag.Missing()}
	if s.MissingFiles == nil {
		s.MissingFiles = []string{}
	}
	var total float64
	for _, r := range records {
		total += r.Score
		switch r.Color {
		case ColorRed:
			s.Red++
		case ColorAmber:
			s.Amber++
		case ColorGreen:
			s.Green++
		}
	}
	if len(records) > 0 {
		s.AverageScore = round1(total / float64(len(records)))
	}
	return s
}
