package classifier

import (
	"fmt"
	"math/rand"
)

// Hand-written exemplars anchoring each class. The generated samples
// below add randomized variations of the same shapes.
var cleanSeeds = []string{
	`def calculate_sum(numbers: List[int]) -> int:
    '''Calculate the sum of numbers.'''
    if not numbers:
        return 0
    return sum(numbers)`,
	`async def fetch_data(url: str) -> dict:
    '''Fetch data from URL with proper error handling.'''
    try:
        response = await client.get(url)
        response.raise_for_status()
        return response.json()
    except HTTPError as e:
        logger.error(f"HTTP error: {e}")
        raise`,
	`class UserService:
    '''Service for user operations.'''

    def __init__(self, repository: UserRepository):
        self._repository = repository

    def get_user(self, user_id: int) -> Optional[User]:
        '''Get user by ID.'''
        return self._repository.find_by_id(user_id)`,
}

var defectiveSeeds = []string{
	`def process(x):
    try:
        result = eval(x)
        exec(x)
    except:
        pass
    return result`,
	`def login(user, pwd):
    password = "admin123"
    if pwd == password:
        global logged_in
        logged_in = True
    print("Login: " + pwd)`,
	`def fetch(url):
    import os
    os.system("curl " + url)
    data = None
    if data == None:
        pass`,
	`var x = 1;
eval(userInput);
document.innerHTML = data;
console.log(x);`,
}

var (
	generatedNames    = []string{"process", "calculate", "fetch", "handle", "validate"}
	generatedParams   = []string{"data: dict", "items: list", "value: int", "name: str"}
	generatedDocs     = []string{"Process the data.", "Calculate result.", "Handle operation."}
	defectiveNames    = []string{"process", "handle", "execute", "run"}
	generatedPerClass = 20
	cleanTemplates    = []func(name, params, doc string) string{
		func(name, params, doc string) string {
			return fmt.Sprintf("def %s(%s) -> dict:\n    '''%s'''\n    return result", name, params, doc)
		},
		func(name, params, doc string) string {
			return fmt.Sprintf("class %s:\n    '''%s'''\n    def __init__(self):\n        pass", name, doc)
		},
		func(name, params, doc string) string {
			return fmt.Sprintf("async def %s():\n    '''%s'''\n    result = await operation()\n    return result", name, doc)
		},
	}
	defectiveTemplates = []func(name string) string{
		func(name string) string {
			return fmt.Sprintf("def %s():\n    try:\n        eval(input())\n    except:\n        pass", name)
		},
		func(name string) string {
			return fmt.Sprintf("var %s;\nconsole.log(%s);\neval(data);", name, name)
		},
		func(name string) string {
			return fmt.Sprintf("def %s(x):\n    global state\n    exec(x)\n    password = 'secret123'", name)
		},
		func(name string) string {
			return fmt.Sprintf("function %s() {\n    document.innerHTML = data;\n    eval(code);\n}", name)
		},
	}
)

// trainingCorpus builds the synthetic labeled corpus: the fixed seeds
// plus template-generated variations of each class, with tokens drawn
// from the given source. Label 0 is clean, 1 is defective.
func trainingCorpus(rng *rand.Rand) ([]string, []int) {
	var docs []string
	var labels []int

	for _, code := range cleanSeeds {
		docs = append(docs, code)
		labels = append(labels, 0)
	}
	for _, code := range defectiveSeeds {
		docs = append(docs, code)
		labels = append(labels, 1)
	}

	for i := 0; i < generatedPerClass; i++ {
		docs = append(docs, generateCleanSample(rng))
		labels = append(labels, 0)
		docs = append(docs, generateDefectiveSample(rng))
		labels = append(labels, 1)
	}

	return docs, labels
}

func generateCleanSample(rng *rand.Rand) string {
	template := cleanTemplates[rng.Intn(len(cleanTemplates))]
	return template(
		generatedNames[rng.Intn(len(generatedNames))],
		generatedParams[rng.Intn(len(generatedParams))],
		generatedDocs[rng.Intn(len(generatedDocs))],
	)
}

func generateDefectiveSample(rng *rand.Rand) string {
	template := defectiveTemplates[rng.Intn(len(defectiveTemplates))]
	return template(defectiveNames[rng.Intn(len(defectiveNames))])
}
