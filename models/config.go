package models

type Config struct {
	Debug bool `yaml:"debug" envconfig:"GENOINSIGHT_DEBUG"`

	Api struct {
		Url          string `yaml:"url" envconfig:"GENOINSIGHT_API_URL"`
		Port         string `yaml:"port" envconfig:"GENOINSIGHT_API_INTERNAL_PORT" default:"5000"`
		GenotypePath string `yaml:"genotypePath" envconfig:"GENOINSIGHT_API_GENOTYPE_PATH"`
		PanelPath    string `yaml:"panelPath" envconfig:"GENOINSIGHT_API_PANEL_PATH"`

		DefaultPanelVersion string `yaml:"defaultPanelVersion" envconfig:"GENOINSIGHT_API_DEFAULT_PANEL_VERSION"`

		BulkIndexingCap int `yaml:"bulkIndexingCap" envconfig:"GENOINSIGHT_API_BULK_INDEXING_CAP" default:"100"`
	} `yaml:"api"`

	Scoring struct {
		// minimum matched/total ratio below which a trait result
		// is flagged low-confidence (still produced, never hidden)
		MinCoverageRatio float64 `yaml:"minCoverageRatio" envconfig:"GENOINSIGHT_SCORING_MIN_COVERAGE_RATIO" default:"0.5"`

		// number of contributing variants retained for display
		TopContributors int `yaml:"topContributors" envconfig:"GENOINSIGHT_SCORING_TOP_CONTRIBUTORS" default:"5"`

		// percentile cut points for risk categorization
		VeryHighCutPercentile     float64 `yaml:"veryHighCutPercentile" envconfig:"GENOINSIGHT_SCORING_VERY_HIGH_CUT" default:"95"`
		HighCutPercentile         float64 `yaml:"highCutPercentile" envconfig:"GENOINSIGHT_SCORING_HIGH_CUT" default:"80"`
		AboveAverageCutPercentile float64 `yaml:"aboveAverageCutPercentile" envconfig:"GENOINSIGHT_SCORING_ABOVE_AVERAGE_CUT" default:"60"`
	} `yaml:"scoring"`

	Elasticsearch struct {
		Enabled  bool   `yaml:"enabled" envconfig:"GENOINSIGHT_ES_ENABLED"`
		Url      string `yaml:"url" envconfig:"GENOINSIGHT_ES_URL"`
		Username string `yaml:"username" envconfig:"GENOINSIGHT_ES_USERNAME"`
		Password string `yaml:"password" envconfig:"GENOINSIGHT_ES_PASSWORD"`
	} `yaml:"elasticsearch"`
}
