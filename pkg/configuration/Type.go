package configuration

type Configuration struct {
	Defaults  *Defaults      `yaml:"defaults" mapstructure:"defaults" validate:"required"`
	Runners   []*RunnerGroup `yaml:"runners" mapstructure:"runners" validate:"required,dive,required"`
	Scheduler *Scheduler     `yaml:"scheduler" mapstructure:"scheduler"`
	Webhooks  *Webhooks      `yaml:"webhooks" mapstructure:"webhooks"`
}

type Defaults struct {
	BaseImage string `yaml:"base_image" mapstructure:"base_image" validate:"required"`
	OrgURL    string `yaml:"org_url" mapstructure:"org_url" validate:"required,url"`
}

type RunnerGroup struct {
	ID                string   `yaml:"id" mapstructure:"id" validate:"required"`
	NamePrefix        string   `yaml:"name_prefix" mapstructure:"name_prefix" validate:"required"`
	Labels            []string `yaml:"labels" mapstructure:"labels" validate:"required,min=1"`
	Replicas          int      `yaml:"replicas" mapstructure:"replicas" validate:"gte=0"`
	BuildImage        string   `yaml:"build_image" mapstructure:"build_image"`
	Technology        string   `yaml:"technology" mapstructure:"technology"`
	TechnologyVersion string   `yaml:"technology_version" mapstructure:"technology_version"`
	BaseImage         string   `yaml:"base_image" mapstructure:"base_image"`
	OrgURL            string   `yaml:"org_url" mapstructure:"org_url" validate:"omitempty,url"`
}

type Scheduler struct {
	Enabled       bool     `yaml:"enabled" mapstructure:"enabled"`
	CheckInterval string   `yaml:"check_interval" mapstructure:"check_interval"`
	TimeWindow    string   `yaml:"time_window" mapstructure:"time_window"`
	Days          []string `yaml:"days" mapstructure:"days"`
	Actions       []string `yaml:"actions" mapstructure:"actions"`
	MaxRetries    int      `yaml:"max_retries" mapstructure:"max_retries"`
	ListenAddr    string   `yaml:"listen_addr" mapstructure:"listen_addr"`
}

type Webhooks struct {
	Enabled    bool      `yaml:"enabled" mapstructure:"enabled"`
	Timeout    int       `yaml:"timeout" mapstructure:"timeout"`
	RetryCount int       `yaml:"retry_count" mapstructure:"retry_count"`
	RetryDelay int       `yaml:"retry_delay" mapstructure:"retry_delay"`
	Slack      *Provider `yaml:"slack" mapstructure:"slack"`
	Discord    *Provider `yaml:"discord" mapstructure:"discord"`
	Teams      *Provider `yaml:"teams" mapstructure:"teams"`
}

type Provider struct {
	Enabled    bool                `yaml:"enabled" mapstructure:"enabled"`
	WebhookURL string              `yaml:"webhook_url" mapstructure:"webhook_url" validate:"omitempty,url"`
	Channel    string              `yaml:"channel" mapstructure:"channel"`
	Username   string              `yaml:"username" mapstructure:"username"`
	AvatarURL  string              `yaml:"avatar_url" mapstructure:"avatar_url"`
	Timeout    int                 `yaml:"timeout" mapstructure:"timeout"`
	Events     []string            `yaml:"events" mapstructure:"events"`
	Templates  map[string]Template `yaml:"templates" mapstructure:"templates"`
}

type Template struct {
	Title         string    `yaml:"title" mapstructure:"title"`
	Text          string    `yaml:"text" mapstructure:"text"`
	Description   string    `yaml:"description" mapstructure:"description"`
	Color         string    `yaml:"color" mapstructure:"color"`
	ColorDecimal  int       `yaml:"color_decimal" mapstructure:"color_decimal"`
	ThemeColor    string    `yaml:"theme_color" mapstructure:"theme_color"`
	UseAttachment *bool     `yaml:"use_attachment" mapstructure:"use_attachment"`
	Fields        []Field   `yaml:"fields" mapstructure:"fields"`
	Sections      []Section `yaml:"sections" mapstructure:"sections"`
}

type Field struct {
	Name   string `yaml:"name" mapstructure:"name"`
	Value  string `yaml:"value" mapstructure:"value"`
	Short  bool   `yaml:"short" mapstructure:"short"`
	Inline bool   `yaml:"inline" mapstructure:"inline"`
}

type Section struct {
	ActivityTitle string  `yaml:"activity_title" mapstructure:"activity_title"`
	Facts         []Field `yaml:"facts" mapstructure:"facts"`
}
