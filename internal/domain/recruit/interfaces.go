package recruit

// Store provides state access for recruitment posts.
type Store interface {
	CreateRecruitmentPost(ideaID, title, description string, skills []string) Post
	SubmitApplication(postID, applicantName, email, message string) bool
	RecruitmentPost(id string) (Post, bool)
	RecruitmentPosts() []Post
}
