package platforms

type BuildOptions struct {
	Tag        string
	Dockerfile string
	BuildDir   string
	BuildArgs  map[string]*string
	Quiet      bool
}

type RunOptions struct {
	Name    string
	Image   string
	Command string
	Env     map[string]string
}
