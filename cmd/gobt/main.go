// Command gobt runs a roll-ladder backtest over a directory of kline CSVs.
package main

import (
	"os"

	"github.com/evdnx/gobt/backtest"
	"github.com/evdnx/gobt/candlechart"
	"github.com/evdnx/gobt/config"
	"github.com/evdnx/gobt/logger"
	"github.com/evdnx/gobt/strategy"
)

func main() {
	env := config.FromEnv()

	log, err := logger.NewZapLogger()
	if err != nil {
		os.Exit(1)
	}

	chart, err := candlechart.ReadFromCSV(env.DataDir, env.CandleInterval)
	if err != nil {
		log.Error("load_candles_failed", logger.String("path", env.DataDir), logger.Err(err))
		os.Exit(1)
	}
	log.Info("candles_loaded",
		logger.String("path", env.DataDir),
		logger.Int("count", len(chart.Candles)),
	)

	roll, err := strategy.NewRollStrategy(env.Bull, env.Capital, config.DefaultRollLadder(), log)
	if err != nil {
		log.Error("strategy_init_failed", logger.Err(err))
		os.Exit(1)
	}

	res := backtest.Run(roll, chart.Candles)
	if res.Err != nil {
		log.Error("run_aborted", logger.Err(res.Err))
		os.Exit(1)
	}
	log.Info("run_finished",
		logger.String("status", roll.Status().String()),
		logger.Int("level", roll.Level()),
		logger.Float64("value", res.Value),
		logger.Float64("return_rate", res.Value/env.Capital),
		logger.Float64("max_value", roll.MaxValue()),
		logger.Float64("best_price", roll.BestPrice()),
	)
}
