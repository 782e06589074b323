package gate

import "pingate/internal/domain/pin"

type State struct {
	Authenticated   bool   `json:"authenticated" doc:"Whether the application is unlocked"`
	PinRecordExists bool   `json:"pin_record_exists" doc:"Whether a pin has been set"`
	Prompt          string `json:"prompt" enum:"none,enter,create" doc:"Form the client must show"`
}

func fromDomain(s pin.GateState) State {
	return State{
		Authenticated:   s.Authenticated,
		PinRecordExists: s.PinRecordExists,
		Prompt:          string(s.Prompt),
	}
}

type stateInput struct{}

type stateOutput struct {
	Body State
}

type verifyInput struct {
	Body struct {
		Pin string `json:"pin" doc:"Candidate pin"`
	}
}

type createInput struct {
	Body struct {
		Pin          string `json:"pin" doc:"New pin, 6-20 digits"`
		Confirmation string `json:"confirmation" doc:"Must equal pin"`
	}
}
