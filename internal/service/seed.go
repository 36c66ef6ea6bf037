package service

import (
	"github.com/meagherphilip/blogsmith/internal/models"
)

// seedPosts is the fixed demo content for the legacy posts table.
var seedPosts = []models.Post{
	{
		Title:   "Understanding Compound Interest: The Eighth Wonder of the World",
		Slug:    "understanding-compound-interest",
		Excerpt: "Learn how compound interest works and why Einstein allegedly called it the eighth wonder of the world.",
		Content: `Compound interest is the most powerful force in the universe. When you understand it, you earn it. When you don't, you pay it.

## What is Compound Interest?

Compound interest is interest calculated on the initial principal and also on the accumulated interest of previous periods. It's essentially "interest on interest."

## The Rule of 72

A quick way to estimate how long it takes to double your money:

` + "```" + `
Years = 72 / Interest Rate
` + "```" + `

At 8% annual return, your money doubles every 9 years.

## Real World Impact

- $10,000 invested at age 25 with 8% returns = $217,000 at age 65
- The same amount invested at age 35 = $100,000 at age 65

Start early. Time is your greatest asset.`,
		Date:   "2026-02-02",
		Author: "EM38Bot",
		Tags:   models.StringList{"finance", "investing", "compound-interest"},
	},
	{
		Title:   "Building an Emergency Fund: Your Financial Safety Net",
		Slug:    "building-emergency-fund",
		Excerpt: "Why every household needs 3-6 months of expenses saved before investing.",
		Content: `Before you invest a single dollar in the stock market, you need an emergency fund. This is non-negotiable.

## Why 3-6 Months?

- 3 months if you have stable income + dual earners
- 6+ months if single earner or variable income
- Some experts now recommend 8-12 months post-pandemic

## Where to Keep It

- High-yield savings account (4-5% APY currently)
- Money market account
- NOT in stocks, crypto, or locked investments

## The Psychological Benefit

Knowing you can handle a $3,000 car repair or job loss without panic is worth more than the extra 2-3% you'd get from investments.`,
		Date:   "2026-02-02",
		Author: "EM38Bot",
		Tags:   models.StringList{"finance", "emergency-fund", "savings"},
	},
	{
		Title:   "Index Funds vs Individual Stocks: Why Buffett Recommends the Former",
		Slug:    "index-funds-vs-stocks",
		Excerpt: "Warren Buffett's bet and why most investors should stick to broad market index funds.",
		Content: `In 2007, Warren Buffett bet $1 million that an S&P 500 index fund would beat any group of hedge funds over 10 years. He won.

## Why Index Funds Win

- **Low fees**: 0.03% vs 1-2% for active management
- **Diversification**: Own 500+ companies instantly
- **Consistency**: 90% of active managers underperform the index over 15 years

## The Math

A 1% fee difference on $100,000 over 30 years:
- 7% return: $761,000
- 6% return: $574,000

That's $187,000 lost to fees.

## When Individual Stocks Make Sense

- You enjoy researching companies
- You're willing to lose the money
- It's play money (<10% of portfolio)`,
		Date:   "2026-02-02",
		Author: "EM38Bot",
		Tags:   models.StringList{"finance", "investing", "index-funds", "stocks"},
	},
	{
		Title:   "The 50/30/20 Budget Rule: A Simple Framework",
		Slug:    "50-30-20-budget-rule",
		Excerpt: "Senator Elizabeth Warren's simple budgeting framework for financial success.",
		Content: `Budgeting doesn't have to be complicated. The 50/30/20 rule is a simple starting point.

## The Breakdown

**50% Needs**
- Rent/mortgage
- Utilities
- Groceries
- Minimum debt payments
- Insurance

**30% Wants**
- Dining out
- Entertainment
- Hobbies
- Vacations

**20% Savings & Debt**
- Emergency fund
- Retirement contributions
- Extra debt payments

## Adjusting for Reality

If you're in a high-cost area, needs might be 60%. If you're aggressively saving for FIRE, you might do 50/20/30.

The key is intentional spending, not perfection.`,
		Date:   "2026-02-02",
		Author: "EM38Bot",
		Tags:   models.StringList{"finance", "budgeting", "money-management"},
	},
	{
		Title:   "Dollar-Cost Averaging: Remove Emotion from Investing",
		Slug:    "dollar-cost-averaging",
		Excerpt: "Why investing the same amount regularly beats trying to time the market.",
		Content: `The best time to invest was yesterday. The second best time is today. Dollar-cost averaging makes this automatic.

## How It Works

Invest a fixed amount at regular intervals regardless of market conditions.

- Market high: Your fixed amount buys fewer shares
- Market low: Your fixed amount buys more shares
- Result: Average cost per share is lower than the average price

## The Psychology

Humans are terrible at market timing:
- We buy high (FOMO)
- We sell low (panic)
- DCA removes the decision

## Real Example

$500/month into S&P 500 for 20 years at average historical returns: ~$275,000 invested becomes ~$600,000.

Consistency beats timing.`,
		Date:   "2026-02-02",
		Author: "EM38Bot",
		Tags:   models.StringList{"finance", "investing", "dca", "strategy"},
	},
}
