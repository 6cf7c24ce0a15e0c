package application

// Actor identifies which side of an application may drive a transition.
type Actor string

const (
	// ActorProfessional is the owner of the referenced listing
	ActorProfessional Actor = "professional"
	// ActorModel is the applicant
	ActorModel Actor = "model"
)

// transitions is the single authoritative table: current status × target
// status -> required actor. Anything absent is invalid, no matter what a
// client tries.
var transitions = map[Status]map[Status]Actor{
	StatusPending: {
		StatusAccepted:  ActorProfessional,
		StatusRejected:  ActorProfessional,
		StatusCancelled: ActorModel,
	},
	StatusAccepted: {
		StatusCompleted: ActorProfessional,
	},
}

// RequiredActor returns who may perform from -> to, or false when the
// transition does not exist.
func RequiredActor(from, to Status) (Actor, bool) {
	targets, ok := transitions[from]
	if !ok {
		return "", false
	}
	actor, ok := targets[to]
	return actor, ok
}
