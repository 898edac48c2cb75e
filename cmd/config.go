package cmd

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	NotifyURL        string
	UpiPayeeID       string
	UpiPayeeName     string
	UpiCurrency      string
	TariffRatePerKm  string
	TariffMinimumFee string
	TariffFlatFee    string
}
