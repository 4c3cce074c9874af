package records

import (
	"github.com/shopspring/decimal"

	"github.com/notinrange/blackrose-task-backend/internal/models"
)

// SampleRecords seeds a fresh CSV file so the API has data to serve before
// any client writes.
var SampleRecords = []models.Record{
	seedRecord("user_1", "BrokerA", "APIKEY_1294", "APISECRET_83978", "3911.21", "32134.43", "2.63"),
	seedRecord("user_2", "BrokerB", "APIKEY_2481", "APISECRET_48637", "-3670.28", "39863.92", "9.79"),
	seedRecord("user_3", "BrokerB", "APIKEY_7580", "APISECRET_92061", "-1349.18", "37607.74", "0.36"),
	seedRecord("user_4", "BrokerC", "APIKEY_1819", "APISECRET_66637", "1114.96", "42650.44", "2.59"),
	seedRecord("user_5", "BrokerA", "APIKEY_9241", "APISECRET_77485", "1779.82", "36279.78", "4.47"),
	seedRecord("user_6", "BrokerB", "APIKEY_3843", "APISECRET_67949", "677.96", "2226.61", "6.31"),
	seedRecord("user_7", "BrokerA", "APIKEY_4889", "APISECRET_50033", "-3227.61", "43271.03", "9.89"),
	seedRecord("user_8", "BrokerB", "APIKEY_2998", "APISECRET_64865", "513.78", "5138.49", "0.98"),
	seedRecord("user_9", "BrokerB", "APIKEY_5588", "APISECRET_29626", "-2203.73", "12033.94", "6.42"),
	seedRecord("user_10", "BrokerC", "APIKEY_8492", "APISECRET_68319", "212.89", "40958.06", "5.69"),
	seedRecord("user_11", "BrokerB", "APIKEY_9496", "APISECRET_51317", "1567.69", "6536.02", "8.64"),
	seedRecord("user_12", "BrokerA", "APIKEY_6808", "APISECRET_74291", "-4358.3", "24420.21", "5.7"),
}

func seedRecord(user, broker, apiKey, apiSecret, pnl, margin, maxRisk string) models.Record {
	return models.Record{
		User:      user,
		Broker:    broker,
		APIKey:    apiKey,
		APISecret: apiSecret,
		PnL:       decimal.RequireFromString(pnl),
		Margin:    decimal.RequireFromString(margin),
		MaxRisk:   decimal.RequireFromString(maxRisk),
	}
}
