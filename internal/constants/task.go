package constants

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

var TaskStatuses = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}

type TaskCategory string

const (
	CategoryWork      TaskCategory = "work"
	CategoryPersonal  TaskCategory = "personal"
	CategoryShopping  TaskCategory = "shopping"
	CategoryHealth    TaskCategory = "health"
	CategoryEducation TaskCategory = "education"
	CategoryOther     TaskCategory = "other"
)

var TaskCategories = []TaskCategory{
	CategoryWork,
	CategoryPersonal,
	CategoryShopping,
	CategoryHealth,
	CategoryEducation,
	CategoryOther,
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

var TaskPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}

const (
	DefaultCategory = CategoryPersonal
	DefaultPriority = PriorityMedium
	DefaultStatus   = StatusPending

	TitleMaxLength       = 100
	DescriptionMaxLength = 500
)
