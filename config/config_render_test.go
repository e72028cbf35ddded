package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type testCaseData struct {
	name                 string
	contents             []string
	envVars              map[string]string
	expectedMerged       string
	expectedRenderConfig string
	expectedError        error
}

func TestRendererMerge(t *testing.T) {
	var tests = []testCaseData{
		{
			name:                 "Merge 2 elements",
			contents:             []string{"A=1\n", "B=2\n"},
			expectedRenderConfig: "A = 1\nB = 2\n",
		},
		{
			name:                 "Merge 3 elements",
			contents:             []string{"A=1\n", "B=2\n", "C=3\n"},
			expectedRenderConfig: "A = 1\nB = 2\nC = 3\n",
		},
		{
			name:                 "Merge 3 elements, overlapped",
			contents:             []string{"A=1\n", "A=2\nB=2\n", "A=3\nC=3\n"},
			expectedRenderConfig: "A = 3\nB = 2\nC = 3\n",
		},
		{
			name:                 "Merge 3 elements, overlapped final var",
			contents:             []string{"A=1\n", "A=2\nB=2\n", "A={{VAR}}\nC=3\n"},
			expectedRenderConfig: "A = {{VAR}}\nB = 2\nC = 3\n",
			expectedError:        ErrMissingVars,
		},
	}
	executeCases(t, tests)
}

func TestRendererDetectCycle(t *testing.T) {
	var tests = []testCaseData{
		{
			name:                 "Cycle 3 elements",
			contents:             []string{"A= {{B}}\n", "B= {{C}}\nC={{A}}\n"},
			expectedMerged:       "A = {{B}}\nB = {{C}}\nC = {{A}}\n",
			expectedRenderConfig: "A = {{B}}\nB = {{C}}\nC = {{A}}\n",
			expectedError:        ErrCycleVars,
		},
		{
			name:                 "Cycle 2 elements",
			contents:             []string{"A= {{B}}\n", "B= {{A}}\n"},
			expectedRenderConfig: "A = {{B}}\nB = {{A}}\n",
			expectedError:        ErrCycleVars,
		},
		{
			name:                 "Cycle 1 elements",
			contents:             []string{"A= {{A}}\n", ""},
			expectedRenderConfig: "A = {{A}}\n",
			expectedError:        ErrCycleVars,
		},
	}
	executeCases(t, tests)
}

func TestRendererTypes(t *testing.T) {
	var tests = []testCaseData{
		{
			name: "Cycle 3 elements B, break var",
			contents: []string{"INT_VALUE={{MY_INT}}\n STR_VALUE= \"{{MY_STR}}\"\n MYBOOL={{MY_BOOL}}\n",
				"MY_STR=\"a string\"\nMY_INT=4\nMY_BOOL=true\nNO_RESOLVED={{NOT_DEFINED_VAR}}\n"},
			envVars:              map[string]string{"UTCR_B": "4"},
			expectedError:        ErrMissingVars,
			expectedRenderConfig: "INT_VALUE = 4\nMYBOOL = true\nMY_BOOL = true\nMY_INT = 4\nMY_STR = \"a string\"\nNO_RESOLVED = {{NOT_DEFINED_VAR}}\nSTR_VALUE = \"a string\"\n",
		},
	}
	executeCases(t, tests)
}

func TestRendererComposedValues(t *testing.T) {
	var tests = []testCaseData{
		{
			name:                 "Composed var",
			contents:             []string{"A=\"path\"\n", "B= \"{{A}}to\"\n"},
			expectedRenderConfig: "A = \"path\"\nB = \"pathto\"\n",
		},
	}
	executeCases(t, tests)
}

func TestRendererCycleBrokenByEnvVar(t *testing.T) {
	var tests = []testCaseData{
		{
			name:                 "Cycle 3 elements B, break var",
			contents:             []string{"A= {{B}}\n", "B= {{C}}\nC={{A}}\n"},
			envVars:              map[string]string{"UTCR_B": "4"},
			expectedRenderConfig: "A = 4\nB = 4\nC = 4\n",
		},
		{
			name:                 "Cycle 3 elements A, break var",
			contents:             []string{"A= {{B}}\n", "B= {{C}}\nC={{A}}\n"},
			envVars:              map[string]string{"UTCR_A": "4"},
			expectedRenderConfig: "A = 4\nB = 4\nC = 4\n",
		},
		{
			name:                 "Cycle 3 elements C, break var",
			contents:             []string{"A= {{B}}\n", "B= {{C}}\nC={{A}}\n"},
			envVars:              map[string]string{"UTCR_C": "4"},
			expectedRenderConfig: "A = 4\nB = 4\nC = 4\n",
		},
	}
	executeCases(t, tests)
}

func TestRendererOverrideByEnvVars(t *testing.T) {
	var tests = []testCaseData{
		{
			name:                 "Variable is not set in config file but override  as number",
			contents:             []string{"A={{C}}\n"},
			envVars:              map[string]string{"UTCR_C": "4"},
			expectedRenderConfig: "A = 4\n",
		},
		// Notice that the exported variable have the quotes
		{
			name:                 "Variable is not set in config file but override  as string",
			contents:             []string{"A={{C}}\n"},
			envVars:              map[string]string{"UTCR_C": "\"4\""},
			expectedRenderConfig: "A = \"4\"\n",
		},
	}
	executeCases(t, tests)
}

func TestRendererPropagateType(t *testing.T) {
	var tests = []testCaseData{
		{
			name:                 "propagateType: set directly",
			contents:             []string{"A=\"hello\"\n", "B= \"{{A}}\"\n"},
			expectedRenderConfig: "A = \"hello\"\nB = \"hello\"\n",
		},
		{
			name:                 "propagateType: set directly",
			contents:             []string{"A=\"hello\"\n", "B=\"{{A}}\"\n"},
			envVars:              map[string]string{"UTCR_A": "you"},
			expectedRenderConfig: "A = \"hello\"\nB = \"you\"\n",
		},
	}
	executeCases(t, tests)
}

func TestRendererComplexStruct(t *testing.T) {
	defaultValues := `
		[L1]
	RPCURL="http://generic_url"
	MaxRetries=100
	[L1.Listener]
		RPCURL="http://localhost:8545"
`
	confiFile := `
		[L1.Listener]
		RPCURL="{{L1.RPCURL}}"
	`
	var tests = []testCaseData{
		{
			name:                 "Complex struct merge",
			contents:             []string{defaultValues, confiFile},
			expectedRenderConfig: "\n[L1]\n  MaxRetries = 100\n  RPCURL = \"http://generic_url\"\n\n  [L1.Listener]\n    RPCURL = \"http://generic_url\"\n",
		},
		// L1.RPCURL is not a var, so only the reference changes here
		{
			name:                 "Complex struct merge override env-var, but we must propagate the string type",
			contents:             []string{defaultValues, confiFile},
			envVars:              map[string]string{"UTCR_L1_RPCURL": "env"},
			expectedRenderConfig: "\n[L1]\n  MaxRetries = 100\n  RPCURL = \"http://generic_url\"\n\n  [L1.Listener]\n    RPCURL = \"env\"\n",
		},
	}
	executeCases(t, tests)
}

func TestRendererConvertFileToToml(t *testing.T) {
	jsonFile := `{
  "L1L2AutoClaimEnabled": true,
  "L1": {
    "RPCURL": "http://localhost:8545",
    "MessageServiceContractAddress": "0x1f7ad7caA53e35b4f0D138dC5CBF91aC108a2674",
    "MaxRetries": 5
  }
}
`
	data, err := convertFileToToml(jsonFile, "json")
	require.NoError(t, err)
	require.Equal(t, "L1L2AutoClaimEnabled = true\n\n[L1]\n  MaxRetries = 5.0\n  MessageServiceContractAddress = \"0x1f7ad7caA53e35b4f0D138dC5CBF91aC108a2674\"\n  RPCURL = \"http://localhost:8545\"\n", data)

	_, err = convertFileToToml("a: 1", "yaml")
	require.ErrorIs(t, err, ErrUnsupportedConfigFileType)
}

type rendererTestData struct {
	Sut     *Renderer
	EnvMock *osLookupEnvMock
}

func newRendererTestData(data []string) rendererTestData {
	envMock := &osLookupEnvMock{
		Env: map[string]string{},
	}
	filesData := make([]FileData, len(data))
	for i, d := range data {
		filesData[i] = FileData{Name: fmt.Sprintf("file%d", i), Content: d}
	}
	return rendererTestData{
		EnvMock: envMock,
		Sut: &Renderer{
			Files:     filesData,
			LookupEnv: envMock.LookupEnv,
			EnvPrefix: "UTCR",
		},
	}
}

type osLookupEnvMock struct {
	Env map[string]string
}

func (m *osLookupEnvMock) LookupEnv(key string) (string, bool) {
	val, exists := m.Env[key]
	return val, exists
}

func executeCases(t *testing.T, tests []testCaseData) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testData := newRendererTestData(tt.contents)
			if tt.envVars != nil {
				testData.EnvMock.Env = tt.envVars
			}
			if tt.expectedMerged != "" {
				merged, err := testData.Sut.Merge()
				require.NoError(t, err)
				require.Equal(t, tt.expectedMerged, merged)
			}
			res, err := testData.Sut.Render()
			if tt.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			if len(tt.expectedRenderConfig) > 0 {
				require.Equal(t, tt.expectedRenderConfig, res)
			}
		})
	}
}
