package cmd

type (
	ListHistoryReq struct {
		Paging
	}

	ListHistoryResp struct {
		Code    int        `json:"code"`
		Msg     string     `json:"msg"`
		History []*History `json:"history"`
		Total   int64      `json:"total"`
	}

	GetHistoryReq struct {
		Id string `json:"id" query:"id" vd:"len($)>0"`
	}

	GetHistoryResp struct {
		Code    int      `json:"code"`
		Msg     string   `json:"msg"`
		History *History `json:"history"`
	}

	History struct {
		ID        string    `json:"id"`
		SessionId string    `json:"sessionId"`
		Dialogs   []*Dialog `json:"dialogs"`
		Report    *Report   `json:"report"`
		StartTime int64     `json:"startTime"`
		EndTime   int64     `json:"endTime"`
	}

	Dialog struct {
		Role    string   `json:"role"`
		Content string   `json:"content"`
		Emotion string   `json:"emotion,omitempty"`
		Level   string   `json:"level,omitempty"`
		Topics  []string `json:"topics,omitempty"`
	}

	Report struct {
		Emotions    []string `json:"emotions"`
		PeakLevel   string   `json:"peakLevel"`
		Topics      []string `json:"topics"`
		Strategies  []string `json:"strategies"`
		CrisisTurns int      `json:"crisisTurns"`
		Keywords    []string `json:"keywords"`
		Content     string   `json:"content"`
		Grade       string   `json:"grade"`
		Suggestion  []string `json:"suggestion"`
	}
)
