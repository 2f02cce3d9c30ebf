package output

// DefaultAssumptions lists the calculation rules rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Missing months are estimated from the average of recorded months",
	"Missing bonuses are estimated from the recorded bonuses (two per year)",
	"Social insurance of a bonus month is counted twice",
	"Rule sets are matched top to bottom; the first matching bracket is used",
	"Salary income is only supported below the year-end adjustment income line",
}
