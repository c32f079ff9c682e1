// Command tpmsdecode replays a recorded pulse stream through the TPMS
// decoding engine and prints whatever sensor readings it finds.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	tpmscore "github.com/kg0tpm/tpmscore/src"
)

var (
	configFile  = pflag.StringP("config-file", "c", "", "YAML file listing modulation presets.")
	modName     = pflag.StringP("modulation", "m", "default", "Name of the modulation preset to filter pulses with.")
	inputFile   = pflag.StringP("input-file", "i", "", "Binary pulse-sample file to replay (level byte + 4-byte LE duration_us per record). Reads stdin if omitted.")
	bufCapacity = pflag.Uint32P("buffer-capacity", "b", 32768, "Ring buffer capacity in samples.")
	metricsAddr = pflag.StringP("metrics-addr", "M", "", "If set, expose Prometheus metrics on this address (e.g. :9402) instead of exiting after one pass.")
	jsonOutput  = pflag.BoolP("json", "j", false, "Print readings as JSON lines instead of a human-readable summary.")
	help        = pflag.BoolP("help", "h", false, "Display help text.")
)

type presetFile struct {
	Presets []tpmscore.ModulationPreset `yaml:"presets"`
}

func loadPresets(path string) ([]tpmscore.ModulationPreset, error) {
	if path == "" {
		return []tpmscore.ModulationPreset{{Name: "default", DurationFilterUs: 50}}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var pf presetFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return pf.Presets, nil
}

func findPreset(presets []tpmscore.ModulationPreset, name string) (tpmscore.ModulationPreset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return tpmscore.ModulationPreset{}, false
}

// registerStatsGauges exposes a scanner's four instrumentation counters
// (scan/coherent/decode-try/decode-ok) as Prometheus gauges backed
// directly by Stats.Snapshot, so a scrape always reflects the scanner's
// own counters rather than a parallel set main keeps itself.
func registerStatsGauges(stats *tpmscore.Stats) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{Name: "tpmsdecode_scan_total", Help: "ScanForSignal invocations."}, func() float64 {
		scan, _, _, _ := stats.Snapshot()
		return float64(scan)
	})
	promauto.NewGaugeFunc(prometheus.GaugeOpts{Name: "tpmsdecode_coherent_total", Help: "Runs judged coherent by the scanner."}, func() float64 {
		_, coherent, _, _ := stats.Snapshot()
		return float64(coherent)
	})
	promauto.NewGaugeFunc(prometheus.GaugeOpts{Name: "tpmsdecode_decode_try_total", Help: "Coherent runs handed to the protocol registry."}, func() float64 {
		_, _, decodeTry, _ := stats.Snapshot()
		return float64(decodeTry)
	})
	promauto.NewGaugeFunc(prometheus.GaugeOpts{Name: "tpmsdecode_decode_ok_total", Help: "Decode attempts that matched a registered protocol."}, func() float64 {
		_, _, _, decodeOk := stats.Snapshot()
		return float64(decodeOk)
	})
}

func readPulses(f *os.File) ([]tpmscore.PulseSample, error) {
	var out []tpmscore.PulseSample
	rec := make([]byte, 5)
	for {
		if _, err := io.ReadFull(f, rec); err != nil {
			if err == io.EOF {
				break
			}
			return out, fmt.Errorf("short pulse record: %w", err)
		}
		level := rec[0] != 0
		dur := uint32(rec[1]) | uint32(rec[2])<<8 | uint32(rec[3])<<16 | uint32(rec[4])<<24
		out = append(out, tpmscore.PulseSample{Level: level, DurationUs: dur})
	}
	return out, nil
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: tpmsdecode [options]")
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if *help {
		pflag.Usage()
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tpmsdecode"})

	presets, err := loadPresets(*configFile)
	if err != nil {
		logger.Fatal("loading presets", "err", err)
	}
	preset, ok := findPreset(presets, *modName)
	if !ok {
		logger.Fatal("unknown modulation preset", "name", *modName)
	}

	in := os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("opening input file", "err", err)
		}
		defer f.Close()
		in = f
	}

	pulses, err := readPulses(in)
	if err != nil {
		logger.Fatal("reading pulses", "err", err)
	}
	logger.Info("loaded pulses", "count", len(pulses), "preset", preset.Name, "min_us", preset.DurationFilterUs)

	buf := tpmscore.NewRawSamples(*bufCapacity)
	for _, p := range pulses {
		buf.Append(p.Level, p.DurationUs)
	}

	scanner := tpmscore.NewScanner(*bufCapacity, tpmscore.DefaultRegistry)

	if *metricsAddr != "" {
		registerStatsGauges(&scanner.Stats)
		http.Handle("/metrics", promhttp.Handler())
		// Deferred so the server runs, and keeps the process alive, once
		// the single pass below has finished on any of its return paths.
		defer func() {
			logger.Info("serving metrics", "addr", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				logger.Error("metrics server exited", "err", err)
			}
		}()
	}

	scanner.ScanForSignal(buf, preset.DurationFilterUs)

	if !scanner.Decoded {
		logger.Warn("no decodable signal found", "best_run_len", scanner.BestLen)
		return
	}

	reading, ok := tpmscore.ExtractReading(scanner.MsgInfo)
	if !ok {
		logger.Warn("decoded message carried no TPMS fields", "decoder", scanner.MsgInfo.Decoder.Name)
		return
	}

	if *jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(reading); err != nil {
			logger.Fatal("encoding reading", "err", err)
		}
		return
	}

	fmt.Printf("protocol=%s tire_id=%x", reading.Protocol, reading.TireID)
	if reading.HasPressureKpa {
		fmt.Printf(" pressure_kpa=%.2f", reading.PressureKpa)
	}
	if reading.HasPressurePsi {
		fmt.Printf(" pressure_psi=%.2f", reading.PressurePsi)
	}
	if reading.HasTemperatureC {
		fmt.Printf(" temperature_c=%d", reading.TemperatureC)
	}
	fmt.Println()
}
