package quantity

// Entry one reported value.
type Entry struct {
	ID    string
	Value float64
}

// Report values in variable order.
type Report []Entry

// Get value of id.
func (r Report) Get(id string) (float64, bool) {
	for _, e := range r {
		if e.ID == id {
			return e.Value, true
		}
	}
	return 0, false
}

// AsCodeUnits every stored value in code units. Variables not computed yet are left out.
func (ev *Evaluator) AsCodeUnits() Report {
	ev.refreshReports()
	return append(Report(nil), ev.reports.code...)
}

// AsCGSUnits every stored value converted to CGS with the table.
func (ev *Evaluator) AsCGSUnits() Report {
	ev.refreshReports()
	return append(Report(nil), ev.reports.cgs...)
}

func (ev *Evaluator) refreshReports() {
	if ev.reports.revision == ev.revision && ev.reports.code != nil {
		return
	}
	code := make(Report, 0, len(ev.specs))
	cgs := make(Report, 0, len(ev.specs))
	for _, spec := range ev.specs {
		v, ok := ev.values[spec.ID]
		if !ok {
			continue
		}
		code = append(code, Entry{ID: spec.ID, Value: v})
		cgs = append(cgs, Entry{ID: spec.ID, Value: v * ev.table.MustLookup(spec.Dimension)})
	}
	ev.reports.code, ev.reports.cgs = code, cgs
	ev.reports.revision = ev.revision
}
