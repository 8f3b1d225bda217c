package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	qec "github.com/perclft/QECBench/codes"
	"github.com/perclft/QECBench/sim"
)

// ------------------------------------------------------------------
// Benchmark Daemon
// ------------------------------------------------------------------

type BenchServer struct {
	rdb        *redis.Client
	defaultTTL time.Duration
	hits       int64
	misses     int64
}

func NewBenchServer(rdb *redis.Client, defaultTTL time.Duration) *BenchServer {
	return &BenchServer{
		rdb:        rdb,
		defaultTTL: defaultTTL,
	}
}

// ------------------------------------------------------------------
// ListCodes - Enumerate the available benchmark codes
// ------------------------------------------------------------------

func (s *BenchServer) ListCodes(ctx context.Context, req *Empty) (*CodeList, error) {
	var infos []*CodeInfo
	for _, code := range qec.All() {
		code.Construct()
		circ := code.Circuit()
		infos = append(infos, &CodeInfo{
			CodeId:          code.ID(),
			Name:            code.Name(),
			NumQubits:       int32(circ.NumQubits()),
			NumClbits:       int32(circ.NumClbits()),
			NumInstructions: int32(circ.NumInstructions()),
			OutputFile:      code.OutputFile(),
		})
	}
	return &CodeList{Codes: infos}, nil
}

// ------------------------------------------------------------------
// GenerateBenchmark - Build a circuit and return its QASM artifact
// ------------------------------------------------------------------

func (s *BenchServer) GenerateBenchmark(ctx context.Context, req *GenerateRequest) (*BenchmarkArtifact, error) {
	code, ok := qec.ByID(req.CodeId)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown code: %s", req.CodeId)
	}
	code.Construct()

	circ := code.Circuit()
	qasm := circ.QASM()

	log.Printf("⚡ Generated %s: %d qubits, %d ops, %d bytes QASM",
		req.CodeId, circ.NumQubits(), circ.NumInstructions(), len(qasm))

	return &BenchmarkArtifact{
		CodeId:          code.ID(),
		Name:            code.Name(),
		Qasm:            qasm,
		QasmHash:        hashQASM(qasm),
		NumQubits:       int32(circ.NumQubits()),
		NumClbits:       int32(circ.NumClbits()),
		NumInstructions: int32(circ.NumInstructions()),
		OutputFile:      code.OutputFile(),
	}, nil
}

// ------------------------------------------------------------------
// SimulateBenchmark - Run a benchmark, caching counts in Redis
// ------------------------------------------------------------------

func (s *BenchServer) SimulateBenchmark(ctx context.Context, req *SimulateRequest) (*SimulationResult, error) {
	code, ok := qec.ByID(req.CodeId)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown code: %s", req.CodeId)
	}
	code.Construct()

	shots := int(req.Shots)
	if shots <= 0 {
		shots = 1024
	}
	if shots > 100000 {
		shots = 100000
	}

	jobID := uuid.New().String()
	qasm := code.Circuit().QASM()
	cacheKey := fmt.Sprintf("cache:%s:%d:%d", hashQASM(qasm), shots, req.Seed)

	// Seeded runs are deterministic, so cached counts are exact replays.
	if req.Seed != 0 {
		if cached, err := s.lookupCache(ctx, cacheKey); err == nil && cached != nil {
			atomic.AddInt64(&s.hits, 1)
			log.Printf("✅ Cache HIT: %s shots=%d", req.CodeId, shots)
			cached.JobId = jobID
			cached.FromCache = true
			return cached, nil
		}
		atomic.AddInt64(&s.misses, 1)
	}

	simulator := sim.New()
	simulator.Shots = shots
	simulator.Seed = req.Seed

	start := time.Now()
	counts, err := simulator.Run(code.Circuit())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "simulation failed: %v", err)
	}
	elapsed := time.Since(start)

	result := &SimulationResult{
		JobId:      jobID,
		CodeId:     req.CodeId,
		Shots:      int32(shots),
		Seed:       req.Seed,
		Counts:     make(map[string]int32, len(counts)),
		ElapsedMs:  elapsed.Milliseconds(),
		FromCache:  false,
		FinishedAt: time.Now().Unix(),
	}
	for k, v := range counts {
		result.Counts[k] = int32(v)
	}

	if req.Seed != 0 {
		s.storeCache(ctx, cacheKey, result)
	}

	log.Printf("🔬 Simulated %s: shots=%d, outcomes=%d, took=%v",
		req.CodeId, shots, len(counts), elapsed)

	return result, nil
}

func (s *BenchServer) lookupCache(ctx context.Context, key string) (*SimulationResult, error) {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	var result SimulationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *BenchServer) storeCache(ctx context.Context, key string, result *SimulationResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, s.defaultTTL).Err(); err != nil {
		log.Printf("❌ Failed to cache %s: %v", key, err)
	}
}

// ------------------------------------------------------------------
// GetCacheStats - Cache hit/miss counters
// ------------------------------------------------------------------

func (s *BenchServer) GetCacheStats(ctx context.Context, req *Empty) (*CacheStats, error) {
	keys, _ := s.rdb.Keys(ctx, "cache:*").Result()

	hits := atomic.LoadInt64(&s.hits)
	misses := atomic.LoadInt64(&s.misses)
	total := hits + misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return &CacheStats{
		TotalEntries: int64(len(keys)),
		TotalHits:    hits,
		TotalMisses:  misses,
		HitRate:      hitRate,
	}, nil
}

func hashQASM(qasm string) string {
	h := sha256.Sum256([]byte(qasm))
	return hex.EncodeToString(h[:])
}

// ------------------------------------------------------------------
// Placeholder types (would be generated from protobuf)
// ------------------------------------------------------------------

type Empty struct{}

type CodeInfo struct {
	CodeId          string `json:"code_id"`
	Name            string `json:"name"`
	NumQubits       int32  `json:"num_qubits"`
	NumClbits       int32  `json:"num_clbits"`
	NumInstructions int32  `json:"num_instructions"`
	OutputFile      string `json:"output_file"`
}

type CodeList struct {
	Codes []*CodeInfo
}

type GenerateRequest struct {
	CodeId string
}

type BenchmarkArtifact struct {
	CodeId          string `json:"code_id"`
	Name            string `json:"name"`
	Qasm            string `json:"qasm"`
	QasmHash        string `json:"qasm_hash"`
	NumQubits       int32  `json:"num_qubits"`
	NumClbits       int32  `json:"num_clbits"`
	NumInstructions int32  `json:"num_instructions"`
	OutputFile      string `json:"output_file"`
}

type SimulateRequest struct {
	CodeId string
	Shots  int32
	Seed   int64
}

type SimulationResult struct {
	JobId      string           `json:"job_id"`
	CodeId     string           `json:"code_id"`
	Shots      int32            `json:"shots"`
	Seed       int64            `json:"seed"`
	Counts     map[string]int32 `json:"counts"`
	ElapsedMs  int64            `json:"elapsed_ms"`
	FromCache  bool             `json:"from_cache"`
	FinishedAt int64            `json:"finished_at"`
}

type CacheStats struct {
	TotalEntries int64
	TotalHits    int64
	TotalMisses  int64
	HitRate      float64
}

// ------------------------------------------------------------------
// Main
// ------------------------------------------------------------------

func main() {
	redisAddr := flag.String("redis-addr", "localhost:6379", "Redis address")
	port := flag.Int("port", 50055, "gRPC port")
	ttlMinutes := flag.Int("default-ttl", 60, "Cached result TTL in minutes")
	flag.Parse()

	rdb := redis.NewClient(&redis.Options{
		Addr:     *redisAddr,
		Password: "",
		DB:       2, // Separate DB from the other services
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis (DB 2 - Benchmarks)")

	server := NewBenchServer(rdb, time.Duration(*ttlMinutes)*time.Minute)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer()
	// RegisterBenchmarkServiceServer(grpcServer, server)

	log.Printf("🧮 QEC Benchmark Daemon starting on port %d", *port)
	log.Printf("   Redis: %s (DB 2)", *redisAddr)
	log.Printf("   Codes: %v", qec.IDs())

	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}

	_ = server // Silence unused variable warning
}
