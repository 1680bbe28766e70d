package agent

import (
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// creates the facilitator
func newFacilitator(logger *zap.Logger, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Logger:    logger,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is planning household finances: investing monthly in Taiwanese ETFs,
			or repaying a mortgage. Amounts are in TWD.
			Never compute figures yourself, always ask the Planner, and give the user the
			assumptions behind each figure (returns, dividend yields, interest rates).

			Answer in the user's language, in markdown.
		`),
		},
		Library: NewLibrary(experts),
	}
}

// NewPlanner returns the expert running the calculators.
func NewPlanner(logger *zap.Logger) *Expert {
	lib := Calculators()
	return &Expert{
		Name: "Planner",
		Description: `This is the Planner, in charge of every computation.
		It knows the fund catalog (0050, 0056, 0061, 00878, 00919), projects periodic
		investments month by month, alone or as a portfolio, and computes and compares mortgage repayments.
		Ask the Planner for any figure.`,
		ModelName: model,
		Logger:    logger,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
				You are a financial planner. You never compute figures yourself: use the Tools.

				- Funds lists the catalog: average return, dividend yield and price of each fund.
				- Projection projects a monthly investment, in one fund or at a given return.
				- Portfolio projects current holdings of several funds with contributions split between them.
				- Mortgage computes how long a loan takes to repay with a given monthly payment.
				- Compare compares two loans.

				Rates of investments are annual fractions (0.07 for 7%), mortgage rates are
				percents (2 for 2%). Months are counted from 1.
				When a tool returns an error, fix the arguments or explain the error.
			`),
		},
		Library: NewLibrary(lib),
	}
}

// NewAnalyst returns the expert searching for recent market information.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a market analyst, aware of the latest news about Taiwanese ETFs,
		their dividends, their prices, and about mortgage rates in Taiwan.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are a market analyst. You Leverage Google Search to ground your assertions
			in a solid truth: recent fund prices, dividend announcements, central bank and
			mortgage rates. Always give the date of the information you found.
			`),
		},
	}
}
