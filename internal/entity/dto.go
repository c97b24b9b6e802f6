package entity

// UsageLogInput 是创建和更新用量记录的完整请求体。
// 更新没有部分提交模式，必须提交完整且合法的负载。
type UsageLogInput struct {
	AssignmentTitle string `json:"assignmentTitle"`
	DateOfUse       string `json:"dateOfUse"`
	Tool            string `json:"tool"`
	PurposeCategory string `json:"purposeCategory"`

	OptionalExplanation OptionalText `json:"optionalExplanation"`
	PromptQueryUsed     OptionalText `json:"promptQueryUsed"`
	OutputReceived      OptionalText `json:"outputReceived"`
	ModifiedOutput      OptionalText `json:"modifiedOutput"`
}

// SummaryQuery holds the filter criteria accepted by the summary endpoint.
type SummaryQuery struct {
	Course          string `json:"course" form:"course" query:"course"`
	TaskType        string `json:"taskType" form:"task_type" query:"task_type"`
	Tool            string `json:"tool" form:"tool" query:"tool"`
	PurposeCategory string `json:"purposeCategory" form:"purpose_category" query:"purpose_category"`
	TimeRange       string `json:"timeRange" form:"time_range" query:"time_range"`
	FromDate        string `json:"fromDate" form:"from_date" query:"from_date"`
	ToDate          string `json:"toDate" form:"to_date" query:"to_date"`
}

// MonthBucketItem 是按月聚合的时间序列中的一个桶。
type MonthBucketItem struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// ToolCountItem 是工具使用次数排行中的一项。
type ToolCountItem struct {
	Tool  string `json:"tool"`
	Count int    `json:"count"`
}

// SummaryResponse is the response of the summary endpoint.
type SummaryResponse struct {
	Total             int               `json:"total"`
	UniqueTools       int               `json:"uniqueTools"`
	UniqueAssignments int               `json:"uniqueAssignments"`
	TopPurpose        string            `json:"topPurposeCategory"`
	Monthly           []MonthBucketItem `json:"monthly"`
	TopTools          []ToolCountItem   `json:"topTools"`
	Logs              []DbUsageLog      `json:"logs"`
}

// DeclarationResponse is the response of the declaration endpoint.
type DeclarationResponse struct {
	Filename     string `json:"filename"`
	Content      string `json:"content"`
	ArchiveKey   string `json:"archiveKey,omitempty"`
	ArchiveError string `json:"archiveError,omitempty"`
}

// BulkDeleteFailure 记录批量删除中单条记录的失败。
type BulkDeleteFailure struct {
	ID    uint   `json:"id"`
	Error string `json:"error"`
}

// BulkDeleteResponse is the response of the bulk delete endpoint.
type BulkDeleteResponse struct {
	Deleted int                 `json:"deleted"`
	Failed  []BulkDeleteFailure `json:"failed,omitempty"`
}

// OptionsResponse lists the suggested choices used by entry forms.
// 两组列表都只是建议项，校验只要求字段非空。
type OptionsResponse struct {
	Tools             []string `json:"tools"`
	PurposeCategories []string `json:"purposeCategories"`
	TitleSeparator    string   `json:"titleSeparator"`
}

// SuggestedTools 是录入表单的 AI 工具建议列表。
var SuggestedTools = []string{
	"ChatGPT",
	"Claude",
	"Gemini",
	"Copilot",
	"Midjourney",
	"DALL-E",
	"Grammarly AI",
	"Other",
}

// SuggestedPurposeCategories 是录入表单的用途类别建议列表。
var SuggestedPurposeCategories = []string{
	"Brainstorming",
	"Drafting",
	"Editing & Proofreading",
	"Summarisation",
	"Translation",
	"Coding Assistance",
	"Debugging",
	"Research Support",
	"Study/Tutoring",
	"Data Analysis",
	"Other",
}
