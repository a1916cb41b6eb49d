package monet_test

import (
	"fmt"

	"github.com/monet-go/monet"
)

func ExampleParseAmount() {
	a, err := monet.ParseAmount("12.5")
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	// Output: 12.5
}

func ExampleParseCode() {
	c, err := monet.ParseCode("usd")
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	// Output: USD
}

func ExampleMoney_Convert() {
	rates := monet.WithRates(map[monet.Code]monet.Amount{
		monet.MustParseCode("USD"): monet.NewAmount(1_000_000),
		monet.MustParseCode("CHF"): monet.NewAmount(1_100_000),
	})
	m := monet.MustWithStrCode(monet.WithUnit(1), "CHF")
	converted, err := m.Convert(monet.MustParseCode("USD"), rates)
	if err != nil {
		panic(err)
	}
	fmt.Println(converted)
	// Output: USD 1.1
}

func ExampleOperation_Execute() {
	rates := monet.WithRates(map[monet.Code]monet.Amount{
		monet.MustParseCode("USD"): monet.NewAmount(1_000_000),
		monet.MustParseCode("CHF"): monet.NewAmount(1_100_000),
	})
	salary := monet.MustWithStrCode(monet.WithUnit(1), "CHF")
	bonus := monet.MustWithStrCode(monet.NewAmount(1_100_000), "USD")
	total, err := salary.Add(bonus).Execute(rates)
	if err != nil {
		panic(err)
	}
	fmt.Println(total)
	// Output: CHF 2
}

func ExampleMoney_Mul() {
	rates := monet.WithRates(map[monet.Code]monet.Amount{
		monet.MustParseCode("EUR"): monet.NewAmount(1_200_000),
	})
	price := monet.MustWithStrCode(monet.WithUnit(100), "EUR")
	discounted, err := price.Mul(monet.NewExponent(8, 1)).Execute(rates)
	if err != nil {
		panic(err)
	}
	fmt.Println(discounted)
	// Output: EUR 80
}
