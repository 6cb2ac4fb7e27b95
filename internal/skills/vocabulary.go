// Package skills holds the skill vocabulary and the similarity rules used to
// compare résumé skills against job requirements.
package skills

// vocabulary is the fixed set of skills recognised in résumé text.
var vocabulary = []string{
	// languages
	"python", "java", "javascript", "typescript", "c++", "c#", "c sharp", "php", "ruby",
	"go", "rust", "swift", "kotlin", "scala", "r", "matlab", "perl", "shell", "bash",

	// frontend
	"html", "css", "react", "reactjs", "angular", "angularjs", "vue.js", "vuejs", "jquery",
	"bootstrap", "tailwind", "material ui", "sass", "scss", "less", "webpack", "babel",

	// backend
	"node.js", "nodejs", "express.js", "express", "django", "flask", "fastapi",
	"spring", "spring boot", "laravel", "rails", "asp.net", ".net", "dotnet",

	// databases
	"sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "sqlite", "oracle",
	"cassandra", "elasticsearch", "dynamodb", "neo4j", "sql server",

	// cloud
	"aws", "amazon web services", "azure", "microsoft azure", "gcp", "google cloud",
	"heroku", "digitalocean", "linode",

	// devops
	"docker", "kubernetes", "jenkins", "gitlab", "github", "terraform", "ansible",
	"chef", "puppet", "vagrant", "git", "svn", "mercurial",

	// data & ai
	"machine learning", "ml", "artificial intelligence", "ai", "data science",
	"deep learning", "neural networks", "tensorflow", "pytorch", "keras",
	"scikit-learn", "sklearn", "pandas", "numpy", "matplotlib", "seaborn",
	"jupyter", "r studio", "tableau", "power bi",

	// mobile
	"android", "ios", "react native", "flutter", "xamarin", "cordova", "phonegap",

	// other
	"rest api", "restful", "graphql", "soap", "microservices", "agile", "scrum",
	"devops", "ci/cd", "linux", "unix", "windows", "macos", "blockchain", "iot",
	"version control", "unit testing", "integration testing", "tdd", "bdd",
}

type abbreviation struct {
	short string
	full  string
}

// abbreviations expand to a canonical label in addition to any literal match.
var abbreviations = []abbreviation{
	{"js", "JavaScript"},
	{"ts", "TypeScript"},
	{"py", "Python"},
	{"db", "Database"},
	{"api", "API"},
	{"ui", "UI"},
	{"ux", "UX"},
	{"ml", "Machine Learning"},
	{"ai", "Artificial Intelligence"},
	{"css3", "CSS"},
	{"html5", "HTML"},
	{"es6", "JavaScript"},
}

// synonyms maps a main skill to its known aliases.
var synonyms = map[string][]string{
	"javascript":          {"js", "node.js", "nodejs"},
	"react":               {"reactjs", "react.js"},
	"angular":             {"angularjs"},
	"python":              {"py"},
	"c++":                 {"cpp", "cplusplus"},
	"c#":                  {"csharp", "c sharp"},
	"sql":                 {"mysql", "postgresql", "sqlite"},
	"html":                {"html5"},
	"css":                 {"css3"},
	"machine learning":    {"ml", "artificial intelligence", "ai"},
	"docker":              {"containerization"},
	"kubernetes":          {"k8s"},
	"amazon web services": {"aws"},
	"google cloud":        {"gcp"},
	"microsoft azure":     {"azure"},
}
