package vtstate

// dispatchColorOperation implements OSC 4/104 and the dynamic-color OSCs:
// palette and special-color set/query/reset requests. The Op
// discriminator itself carries no behavior here -- it exists only for
// caller symmetry with whatever produced the action -- each Request is
// handled independently by kind.
func dispatchColorOperation(t *Terminal, a *ActionColorOperation) {
	if len(a.Requests) == 0 {
		return
	}
	for _, req := range a.Requests {
		switch req.Kind {
		case ColorRequestSet:
			if req.Target.Kind == ColorTargetPalette {
				t.palette.Set(req.Target.Index, req.Color)
			}
			// dynamic and special targets are handled by a collaborator
			// outside this dispatcher's scope; no-op here.

		case ColorRequestReset:
			if req.Target.Kind == ColorTargetPalette {
				t.palette.Reset(req.Target.Index)
			}

		case ColorRequestResetPalette:
			t.palette.ResetAll()

		case ColorRequestQuery, ColorRequestResetSpecial:
			// response-requiring or handled elsewhere; no-op.
		}
	}
}
