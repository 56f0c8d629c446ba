package types

// PlanChangeType classifies a mid cycle plan or seat change by the sign of
// its net proration amount.
type PlanChangeType string

const (
	PlanChangeTypeUpgrade   PlanChangeType = "upgrade"
	PlanChangeTypeDowngrade PlanChangeType = "downgrade"
	PlanChangeTypeLateral   PlanChangeType = "lateral"
)

func (c PlanChangeType) String() string {
	return string(c)
}
