package murk

// LoginRequest is the POST user/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of a successful login. Hash is the session
// credential the backend expects on every later request. Any field may be
// absent from the wire; it then keeps its zero value.
type LoginResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Hash string `json:"hash"`
}

// ProfileResponse is the body of GET user/profile.
type ProfileResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	Score int    `json:"score"`
}

// ScoreRequest is the POST score/submit payload.
type ScoreRequest struct {
	Score int `json:"score"`
}

// ScoreResponse is the body of a successful score submission.
type ScoreResponse struct {
	Accepted bool `json:"accepted"`
	Rank     int  `json:"rank"`
}
