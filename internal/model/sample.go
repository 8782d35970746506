package model

// SampleTasks returns the tasks a fresh dashboard starts with.
func SampleTasks() []Task {
	return []Task{
		{ID: "1", Title: "Revamp marketing website", Description: "Update the homepage and pricing page with new branding.", Priority: PriorityHigh, DueDate: MustDate("2024-08-15")},
		{ID: "2", Title: "API Integration for new feature", Description: "Connect to the third-party weather API.", Priority: PriorityHigh, DueDate: MustDate("2024-08-20")},
		{ID: "3", Title: "Database schema design", Description: "Finalize the schema for the user profiles table.", Priority: PriorityMedium, DueDate: MustDate("2024-08-22"), Completed: true},
		{ID: "4", Title: "Onboarding flow UI/UX", Description: "Design and wireframe the new user onboarding experience.", Priority: PriorityLow, DueDate: MustDate("2024-09-01")},
		{ID: "5", Title: "Setup CI/CD pipeline", Description: "Automate the deployment process using GitHub Actions.", Priority: PriorityMedium, DueDate: MustDate("2024-08-18")},
	}
}
