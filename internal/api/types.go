package api

// Author identifies the user a post belongs to.
type Author struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Post is the backend's post resource. Search results use the same shape
// (body omitted by the server, left empty here).
type Post struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	CreatedDate string `json:"createdDate"`
	Author      Author `json:"author"`
}

// Counts is the numeric summary block of a profile.
type Counts struct {
	PostCount      int `json:"postCount"`
	FollowerCount  int `json:"followerCount"`
	FollowingCount int `json:"followingCount"`
}

// Profile is the response of POST /profile/{username}.
type Profile struct {
	ProfileUsername string `json:"profileUsername"`
	ProfileAvatar   string `json:"profileAvatar"`
	IsFollowing     bool   `json:"isFollowing"`
	Counts          Counts `json:"counts"`
}

// Follower is one entry of a followers/following listing.
type Follower struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// User is the session object returned by a successful login.
type User struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Token    string `json:"token"`
}
