package handler

import (
	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

// --- Request → Service input ---

func toRegisterInput(req registerRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Interests: req.Interests,
		Goals:     req.Goals,
	}
}

func toProfileUpdate(req updateProfileRequest) ports.ProfileUpdate {
	upd := ports.ProfileUpdate{
		Name:      req.Name,
		Bio:       req.Bio,
		Location:  req.Location,
		AvatarURL: req.AvatarURL,
		Interests: req.Interests,
		Goals:     req.Goals,
		Languages: req.Languages,
	}
	if mp := req.MentorProfile; mp != nil {
		upd.Mentor = &ports.MentorProfileUpdate{
			Bio:            mp.Bio,
			Subjects:       mp.Subjects,
			Tags:           mp.Tags,
			Portfolio:      mp.Portfolio,
			HourlyRate:     mp.HourlyRate,
			Languages:      mp.Languages,
			Timezone:       mp.Timezone,
			Certifications: mp.Certifications,
		}
	}
	return upd
}

// --- Service output → Response ---

func toSessionList(res *ports.ListSessionsResult) sessionListResponse {
	return sessionListResponse{
		Items:      nonNilSessions(res.Items),
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
	}
}

func toTimeline(tl *ports.Timeline) timelineResponse {
	return timelineResponse{
		Past:     nonNilSessions(tl.Past),
		Upcoming: nonNilSessions(tl.Upcoming),
	}
}

func toMentorList(res *ports.ListMentorsResult) mentorListResponse {
	return mentorListResponse{
		Items:      nonNilUsers(res.Items),
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
	}
}

func toDashboard(d *ports.LearnerDashboard) learnerDashboardResponse {
	resp := learnerDashboardResponse{
		Recommended:     make([]recommendedMentorResponse, 0, len(d.Recommended)),
		SuggestedTopics: d.SuggestedTopics,
		QuickActions:    make([]quickActionResponse, 0, len(d.QuickActions)),
	}
	if resp.SuggestedTopics == nil {
		resp.SuggestedTopics = []string{}
	}
	for _, r := range d.Recommended {
		resp.Recommended = append(resp.Recommended, recommendedMentorResponse{
			Mentor: r.Mentor,
			Score:  r.Score,
			Online: r.Online,
		})
	}
	for _, a := range d.QuickActions {
		resp.QuickActions = append(resp.QuickActions, quickActionResponse{Label: a.Label, Path: a.Path})
	}
	return resp
}

func toAnalytics(a *ports.Analytics) analyticsResponse {
	return analyticsResponse{
		TotalUsers:    a.TotalUsers,
		MentorsCount:  a.MentorsCount,
		LearnersCount: a.LearnersCount,
		SessionsCount: a.SessionsCount,
		AvgRating:     a.AvgRating,
	}
}

func nonNilSessions(s []*domain.Session) []*domain.Session {
	if s == nil {
		return []*domain.Session{}
	}
	return s
}

func nonNilUsers(u []*domain.User) []*domain.User {
	if u == nil {
		return []*domain.User{}
	}
	return u
}

func toResources(in []resourceRequest) []domain.Resource {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Resource, len(in))
	for i, r := range in {
		out[i] = domain.Resource{Title: r.Title, URL: r.URL}
	}
	return out
}
