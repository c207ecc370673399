package schema

func init() {
	registerHeaders()
	registerSchedules()
}

func registerHeaders() {
	Register(Definition{
		Kind:       KindF3Header,
		Group:      GroupHeader,
		Label:      "Form 3",
		FileLabel:  "FormF3Headers",
		FormTypes:  []string{"F3A", "F3N"},
		Table:      "fec_f3_headers",
		FieldSpecs: F3HeaderFieldSpecs,
	})
	Register(Definition{
		Kind:       KindF3PHeader,
		Group:      GroupHeader,
		Label:      "Form 3P",
		FileLabel:  "FormF3PHeaders",
		FormTypes:  []string{"F3PA", "F3PN"},
		Table:      "fec_f3p_headers",
		FieldSpecs: F3PHeaderFieldSpecs,
	})
	Register(Definition{
		Kind:       KindF3XHeader,
		Group:      GroupHeader,
		Label:      "Form 3X",
		FileLabel:  "FormF3XHeaders",
		FormTypes:  []string{"F3XA", "F3XN"},
		Table:      "fec_f3x_headers",
		FieldSpecs: F3XHeaderFieldSpecs,
	})
}

func registerSchedules() {
	schedules := []struct {
		kind      Kind
		label     string
		fileLabel string
		prefix    string
		specs     []FieldSpec
	}{
		{KindScheduleA, "Schedule A", "ScheduleAImport", "SA", ScheduleAFieldSpecs},
		{KindScheduleB, "Schedule B", "ScheduleBImport", "SB", ScheduleBFieldSpecs},
		{KindScheduleC, "Schedule C", "ScheduleCImport", "SC/", ScheduleCFieldSpecs},
		{KindScheduleC1, "Schedule C-1", "ScheduleC1Import", "SC1/", ScheduleC1FieldSpecs},
		{KindScheduleC2, "Schedule C-2", "ScheduleC2Import", "SC2/", ScheduleC2FieldSpecs},
		{KindScheduleD, "Schedule D", "ScheduleDImport", "SD", ScheduleDFieldSpecs},
		{KindScheduleE, "Schedule E", "ScheduleEImport", "SE", ScheduleEFieldSpecs},
		{KindText, "Text", "TextImport", "TEXT", TextFieldSpecs},
	}

	for _, s := range schedules {
		Register(Definition{
			Kind:       s.kind,
			Group:      GroupSchedule,
			Label:      s.label,
			FileLabel:  s.fileLabel,
			Prefix:     s.prefix,
			Table:      "fec_" + string(s.kind),
			FieldSpecs: s.specs,
		})
	}
}
