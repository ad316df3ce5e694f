package gateway

import (
	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/domain/role"
)

// Demo data seeded into the fixture store. One account per role, plus a
// small score history and inbox for the demo employee.

func seedUsers() []model.User {
	return []model.User{
		{
			ID:         "1",
			Email:      "john.employee@company.com",
			Name:       "John Smith",
			Role:       role.Employee,
			Department: "Engineering",
			Experience: 3,
			Avatar:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		},
		{
			ID:         "2",
			Email:      "sarah.trainer@company.com",
			Name:       "Sarah Johnson",
			Role:       role.Trainer,
			Department: "Training",
			Experience: 8,
			Avatar:     "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		},
		{
			ID:         "3",
			Email:      "mike.manager@company.com",
			Name:       "Mike Wilson",
			Role:       role.Manager,
			Department: "Management",
			Experience: 12,
			Avatar:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		},
		{
			ID:         "4",
			Email:      "admin@company.com",
			Name:       "System Administrator",
			Role:       role.SuperUser,
			Department: "IT Administration",
			Experience: 15,
			Avatar:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		},
	}
}

func seedSkills() []model.Skill {
	return []model.Skill{
		{ID: "1", Name: "JavaScript", Category: "Programming", Description: "Modern JavaScript development"},
		{ID: "2", Name: "React", Category: "Frontend", Description: "React framework development"},
		{ID: "3", Name: "TypeScript", Category: "Programming", Description: "TypeScript for type-safe development"},
		{ID: "4", Name: "Node.js", Category: "Backend", Description: "Server-side JavaScript"},
		{ID: "5", Name: "Communication", Category: "Soft Skills", Description: "Effective communication skills"},
		{ID: "6", Name: "Leadership", Category: "Soft Skills", Description: "Team leadership and management"},
	}
}

func seedScores() []model.Score {
	return []model.Score{
		{
			ID:         "1",
			EmployeeID: "1",
			Skill:      "JavaScript",
			Score:      85,
			Date:       "2024-01-15",
			TrainerID:  "2",
			Feedback:   "Good understanding of ES6+ features",
		},
		{
			ID:         "2",
			EmployeeID: "1",
			Skill:      "React",
			Score:      78,
			Date:       "2024-01-20",
			TrainerID:  "2",
			Feedback:   "Solid component development skills",
		},
	}
}

func seedNotifications() []model.Notification {
	return []model.Notification{
		{
			ID:      "1",
			UserID:  "1",
			Type:    model.TypeFeedback,
			Title:   "New Assessment Feedback",
			Message: "Sarah Johnson left feedback on your JavaScript assessment",
			Date:    "2024-01-15",
		},
		{
			ID:      "2",
			UserID:  "1",
			Type:    model.TypeAssessment,
			Title:   "React Assessment Scored",
			Message: "Your React assessment has been scored: 78/100",
			Date:    "2024-01-20",
		},
	}
}
