package battle

// Execute handles action and then its follow-ups depth first. Follow-ups
// that are no longer usable are skipped. Outcomes are returned in the
// order they happened.
func Execute(action Action) ([]Outcome, error) {
	outcome, err := action.Handle()
	if err != nil {
		return nil, err
	}
	outcomes := []Outcome{outcome}
	for _, next := range outcome.FollowUp.Values() {
		if !next.CanBeUsed() {
			continue
		}
		more, err := Execute(next)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, more...)
	}
	return outcomes, nil
}

// ExecuteAll runs every usable action of actions in order.
func ExecuteAll(actions *ActionCollection) ([]Outcome, error) {
	var outcomes []Outcome
	for _, action := range actions.Values() {
		if !action.CanBeUsed() {
			continue
		}
		more, err := Execute(action)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, more...)
	}
	return outcomes, nil
}
