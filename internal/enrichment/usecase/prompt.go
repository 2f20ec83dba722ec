package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"smart-todo/internal/model"
	taskRepo "smart-todo/internal/task/repository"
)

// Role instructions per workflow. The model is always told to answer
// with a single JSON object; the reasoner additionally constrains the
// response format at the API level.
const (
	enrichTaskInstruction = "You are an expert productivity assistant. Your goal is to take a user's task input " +
		"and enrich it with intelligent suggestions based on their context, workload, and preferences. " +
		"Analyze all provided information to generate a comprehensive, structured JSON response."

	analyzeContextInstruction = "You are an AI information extraction engine. Your job is to analyze text from a user's " +
		"daily life and extract structured, actionable data. Always respond with a valid JSON object."

	recommendInstruction = "You are a proactive AI assistant. Your job is to anticipate the user's needs by " +
		"analyzing their recent communications and current to-do list, then recommending new tasks. " +
		"Do not suggest tasks that are already on the user's list. Respond with a valid JSON object."

	scheduleInstruction = "You are an AI scheduling assistant. Your job is to plan a focused workday by assigning " +
		"the user's pending tasks to concrete time blocks that do not overlap each other or the user's " +
		"existing calendar events. Respond with a valid JSON object."
)

// contextSnippet is the condensed entry shape embedded in prompts.
type contextSnippet struct {
	Content   string `json:"content"`
	EntryType string `json:"entry_type"`
}

func contextSnippets(entries []model.ContextEntry) []contextSnippet {
	out := make([]contextSnippet, 0, len(entries))
	for _, e := range entries {
		out = append(out, contextSnippet{Content: e.Content, EntryType: string(e.EntryType)})
	}
	return out
}

func mustJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(b)
}

func buildEnrichTaskPrompt(t model.Task, entries []model.ContextEntry, load taskRepo.TaskLoadCounts, workHours string) string {
	taskLoad := map[string]int{
		"total":         load.Total,
		"high_priority": load.HighPriority,
		"upcoming":      load.Upcoming,
	}
	preferences := map[string]string{}
	if workHours != "" {
		preferences["work_hours"] = workHours
	}

	var sb strings.Builder
	sb.WriteString("Please analyze the provided information and generate a fully enhanced task object in JSON format.\n\n")
	sb.WriteString("**Input Task Details:**\n")
	fmt.Fprintf(&sb, "- Title: %q\n", t.Title)
	fmt.Fprintf(&sb, "- Description: %q\n\n", t.Description)
	sb.WriteString("**User's Daily Context (Recent Messages, Emails, Notes):**\n")
	sb.WriteString(mustJSON(contextSnippets(entries)))
	sb.WriteString("\n\n**User's Current Task Load:**\n")
	sb.WriteString(mustJSON(taskLoad))
	sb.WriteString("\n\n**User Preferences (Optional):**\n")
	sb.WriteString(mustJSON(preferences))
	sb.WriteString("\n\n**Your Task:**\n")
	sb.WriteString("Generate a JSON object with the following fields:\n")
	sb.WriteString("1.  `title`: A clear, actionable, and concise version of the user's title.\n")
	sb.WriteString("2.  `enhanced_description`: An improved task description, incorporating relevant details from the context.\n")
	sb.WriteString("3.  `priority`: An integer score (1=High, 2=Medium, 3=Low) based on urgency, importance, and context.\n")
	sb.WriteString("4.  `deadline`: A suggested realistic deadline in ISO 8601 format (YYYY-MM-DDTHH:MM:SS).\n")
	sb.WriteString("5.  `suggested_categories`: An array of relevant category names (e.g., \"Work\", \"Personal\", \"Finance\").\n")
	sb.WriteString("6.  `context_tags`: An array of specific, granular tags derived from the task and context.\n")
	sb.WriteString("7.  `reasoning`: A brief explanation for your priority and deadline suggestions.\n")
	return sb.String()
}

func buildAnalyzeContextPrompt(entry model.ContextEntry) string {
	var sb strings.Builder
	sb.WriteString("Please analyze the following context entry and extract key information.\n\n")
	fmt.Fprintf(&sb, "**Entry Type:** %s\n", entry.EntryType.DisplayName())
	sb.WriteString("**Content:**\n---\n")
	sb.WriteString(entry.Content)
	sb.WriteString("\n---\n\n**Your Task:**\n")
	sb.WriteString("Generate a JSON object with the following fields:\n")
	sb.WriteString("1.  `summary`: A one-sentence summary of the content.\n")
	sb.WriteString("2.  `importance_score`: A float between 0.0 and 1.0 indicating how important or actionable this is.\n")
	sb.WriteString("3.  `sentiment`: A string, either \"positive\", \"negative\", or \"neutral\".\n")
	sb.WriteString("4.  `keywords`: An array of the 3-5 most important keywords or phrases.\n")
	sb.WriteString("5.  `potential_tasks`: An array of strings, where each string is a potential task for a to-do list.\n")
	sb.WriteString("6.  `mentioned_deadlines`: An array of strings for any dates or deadlines mentioned.\n")
	sb.WriteString("7.  `mentioned_people`: An array of names of people mentioned.\n")
	return sb.String()
}

func buildRecommendationsPrompt(entries []model.ContextEntry, activeTitles []string) string {
	var sb strings.Builder
	sb.WriteString("Based on the user's recent context and existing tasks, please generate a list of new task recommendations.\n\n")
	sb.WriteString("**Recent Context:**\n")
	sb.WriteString(mustJSON(contextSnippets(entries)))
	sb.WriteString("\n\n**Existing Task Titles (to avoid duplication):**\n")
	sb.WriteString(mustJSON(activeTitles))
	sb.WriteString("\n\n**Your Task:**\n")
	sb.WriteString("Generate a JSON object containing a single key, \"recommendations\", which is an array of task objects.\n")
	sb.WriteString("Each task object should have:\n")
	sb.WriteString("- `title`: The suggested task title.\n")
	sb.WriteString("- `description`: A detailed description of why this task is needed.\n")
	sb.WriteString("- `priority`: An integer score (1-3).\n")
	sb.WriteString("- `reasoning`: A brief explanation for the recommendation.\n")
	sb.WriteString("- `confidence_score`: A float (0.0-1.0) of your confidence in this suggestion.\n")
	sb.WriteString("- `suggested_categories`: An array of relevant category names.\n")
	return sb.String()
}

// scheduleTask is the condensed task shape embedded in the schedule prompt.
type scheduleTask struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Priority         int    `json:"priority"`
	EstimatedMinutes int64  `json:"estimated_duration_minutes,omitempty"`
}

// scheduleEvent is the condensed event shape embedded in the schedule prompt.
type scheduleEvent struct {
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func buildSchedulePrompt(tasks []model.Task, date time.Time, events []model.CalendarEvent, workHours string) string {
	promptTasks := make([]scheduleTask, 0, len(tasks))
	for _, t := range tasks {
		st := scheduleTask{ID: t.ID, Title: t.Title, Priority: t.Priority}
		if t.EstimatedDuration != nil {
			st.EstimatedMinutes = int64(*t.EstimatedDuration / time.Minute)
		}
		promptTasks = append(promptTasks, st)
	}

	promptEvents := make([]scheduleEvent, 0, len(events))
	for _, e := range events {
		promptEvents = append(promptEvents, scheduleEvent{
			Title:     e.Title,
			StartTime: e.StartTime.Format(time.RFC3339),
			EndTime:   e.EndTime.Format(time.RFC3339),
		})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Please plan time blocks for the user's pending tasks on %s.\n\n", date.Format("2006-01-02"))
	sb.WriteString("**Pending Tasks:**\n")
	sb.WriteString(mustJSON(promptTasks))
	sb.WriteString("\n\n**Already Committed Events (do not overlap these):**\n")
	sb.WriteString(mustJSON(promptEvents))
	if workHours != "" {
		fmt.Fprintf(&sb, "\n\n**Working Hours:** %s", workHours)
	}
	sb.WriteString("\n\n**Your Task:**\n")
	sb.WriteString("Generate a JSON object containing a single key, \"suggestions\", which is an array of time-block objects.\n")
	sb.WriteString("Schedule higher-priority tasks earlier, keep blocks within the working hours, and never overlap blocks with each other or with the committed events.\n")
	sb.WriteString("Each time-block object should have:\n")
	sb.WriteString("- `task_id`: The id of the task being scheduled (must be one of the pending task ids).\n")
	sb.WriteString("- `suggested_start_time`: The block start in ISO 8601 format.\n")
	sb.WriteString("- `suggested_end_time`: The block end in ISO 8601 format.\n")
	sb.WriteString("- `reasoning`: A brief explanation for this placement.\n")
	return sb.String()
}
