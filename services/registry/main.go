package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	qec "github.com/perclft/QECBench/codes"
)

// ArtifactRecord represents a row in the qec_artifacts table
type ArtifactRecord struct {
	ID              string    `json:"id"`
	CodeID          string    `json:"code_id"`
	Name            string    `json:"name"`
	NumQubits       int32     `json:"num_qubits"`
	NumInstructions int32     `json:"num_instructions"`
	QASM            string    `json:"qasm"`
	CountsJSON      string    `json:"counts_json"`
	Shots           int32     `json:"shots"`
	CreatedAt       time.Time `json:"created_at"`
}

// RegistryServer implements the ArtifactRegistry gRPC service
type RegistryServer struct {
	db *sql.DB
}

func NewRegistryServer(db *sql.DB) *RegistryServer {
	return &RegistryServer{db: db}
}

// InitDB creates the qec_artifacts table if it doesn't exist
func InitDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS qec_artifacts (
		id UUID PRIMARY KEY,
		code_id VARCHAR(50) NOT NULL,
		name VARCHAR(255) NOT NULL,
		num_qubits INTEGER NOT NULL,
		num_instructions INTEGER NOT NULL,
		qasm TEXT NOT NULL,
		counts_json JSONB DEFAULT '{}',
		shots INTEGER DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_qec_artifacts_code ON qec_artifacts(code_id);
	CREATE INDEX IF NOT EXISTS idx_qec_artifacts_created ON qec_artifacts(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// SaveArtifact stores a generated benchmark artifact
func (s *RegistryServer) SaveArtifact(ctx context.Context, req *SaveArtifactRequest) (*ArtifactMetadata, error) {
	if req.Qasm == "" {
		return nil, status.Error(codes.InvalidArgument, "qasm required")
	}

	id := uuid.New().String()
	now := time.Now()

	countsJSON := req.CountsJson
	if countsJSON == "" {
		countsJSON = "{}"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO qec_artifacts (id, code_id, name, num_qubits, num_instructions, qasm, counts_json, shots, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		id,
		req.CodeId,
		req.Name,
		req.NumQubits,
		req.NumInstructions,
		req.Qasm,
		countsJSON,
		req.Shots,
		now,
	)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to save artifact: %v", err)
	}

	log.Printf("🗄️ Saved artifact %s (%s, %d qubits)", id, req.CodeId, req.NumQubits)

	return &ArtifactMetadata{
		Id:              id,
		CodeId:          req.CodeId,
		Name:            req.Name,
		NumQubits:       req.NumQubits,
		NumInstructions: req.NumInstructions,
		Shots:           req.Shots,
		CreatedAt:       now.Unix(),
	}, nil
}

// LoadArtifact retrieves an artifact by ID
func (s *RegistryServer) LoadArtifact(ctx context.Context, req *LoadArtifactRequest) (*ArtifactRecordResponse, error) {
	var rec ArtifactRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT id, code_id, name, num_qubits, num_instructions, qasm, counts_json, shots, created_at
		FROM qec_artifacts WHERE id = $1
	`, req.ArtifactId).Scan(
		&rec.ID, &rec.CodeID, &rec.Name, &rec.NumQubits, &rec.NumInstructions,
		&rec.QASM, &rec.CountsJSON, &rec.Shots, &rec.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, status.Errorf(codes.NotFound, "artifact not found: %s", req.ArtifactId)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "database error: %v", err)
	}

	return &ArtifactRecordResponse{
		Id:              rec.ID,
		CodeId:          rec.CodeID,
		Name:            rec.Name,
		NumQubits:       rec.NumQubits,
		NumInstructions: rec.NumInstructions,
		Qasm:            rec.QASM,
		CountsJson:      rec.CountsJSON,
		Shots:           rec.Shots,
		CreatedAt:       rec.CreatedAt.Unix(),
	}, nil
}

// ListArtifacts returns artifacts matching the given filters
func (s *RegistryServer) ListArtifacts(ctx context.Context, req *ListArtifactsRequest) (*ArtifactList, error) {
	query := `SELECT id, code_id, name, num_qubits, num_instructions, shots, created_at FROM qec_artifacts WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if req.CodeId != "" {
		query += fmt.Sprintf(" AND code_id = $%d", argIdx)
		args = append(args, req.CodeId)
		argIdx++
	}

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	page := int(req.Page)
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * pageSize

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d OFFSET %d", pageSize, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "query failed: %v", err)
	}
	defer rows.Close()

	var artifacts []*ArtifactMetadata
	for rows.Next() {
		var m ArtifactMetadata
		var createdAt time.Time

		err := rows.Scan(&m.Id, &m.CodeId, &m.Name, &m.NumQubits, &m.NumInstructions, &m.Shots, &createdAt)
		if err != nil {
			continue
		}
		m.CreatedAt = createdAt.Unix()
		artifacts = append(artifacts, &m)
	}

	return &ArtifactList{
		Artifacts: artifacts,
		Page:      int32(page),
		PageSize:  int32(pageSize),
	}, nil
}

// DeleteArtifact removes an artifact from the registry
func (s *RegistryServer) DeleteArtifact(ctx context.Context, req *LoadArtifactRequest) (*Empty, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM qec_artifacts WHERE id = $1`, req.ArtifactId)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "delete failed: %v", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, status.Errorf(codes.NotFound, "artifact not found")
	}

	return &Empty{}, nil
}

// SeedBenchmarks generates and stores the standard benchmark set
func SeedBenchmarks(ctx context.Context, server *RegistryServer, shots int) error {
	for _, code := range qec.All() {
		code.Construct()
		circ := code.Circuit()

		countsJSON := "{}"
		if shots > 0 {
			counts, err := qec.Simulate(code, shots)
			if err != nil {
				return fmt.Errorf("failed to simulate %s: %w", code.ID(), err)
			}
			data, _ := json.Marshal(counts)
			countsJSON = string(data)
		}

		_, err := server.SaveArtifact(ctx, &SaveArtifactRequest{
			CodeId:          code.ID(),
			Name:            code.Name(),
			NumQubits:       int32(circ.NumQubits()),
			NumInstructions: int32(circ.NumInstructions()),
			Qasm:            circ.QASM(),
			CountsJson:      countsJSON,
			Shots:           int32(shots),
		})
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", code.ID(), err)
		}
	}
	return nil
}

// Placeholder types - these would be generated from protobuf
type SaveArtifactRequest struct {
	CodeId          string
	Name            string
	NumQubits       int32
	NumInstructions int32
	Qasm            string
	CountsJson      string
	Shots           int32
}

type LoadArtifactRequest struct {
	ArtifactId string
}

type ListArtifactsRequest struct {
	CodeId   string
	Page     int32
	PageSize int32
}

type ArtifactMetadata struct {
	Id              string
	CodeId          string
	Name            string
	NumQubits       int32
	NumInstructions int32
	Shots           int32
	CreatedAt       int64
}

type ArtifactRecordResponse struct {
	Id              string
	CodeId          string
	Name            string
	NumQubits       int32
	NumInstructions int32
	Qasm            string
	CountsJson      string
	Shots           int32
	CreatedAt       int64
}

type ArtifactList struct {
	Artifacts  []*ArtifactMetadata
	TotalCount int32
	Page       int32
	PageSize   int32
}

type Empty struct{}

func main() {
	dbHost := flag.String("db-host", "localhost", "PostgreSQL host")
	dbPort := flag.Int("db-port", 5432, "PostgreSQL port")
	dbUser := flag.String("db-user", "qec", "PostgreSQL user")
	dbPass := flag.String("db-pass", "quantum", "PostgreSQL password")
	dbName := flag.String("db-name", "qecbench", "PostgreSQL database")
	grpcPort := flag.Int("port", 50056, "gRPC port")
	seed := flag.Bool("seed-benchmarks", false, "Generate and store the standard benchmark set on startup")
	seedShots := flag.Int("seed-shots", 256, "Shots per seeded benchmark simulation")
	flag.Parse()

	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		*dbHost, *dbPort, *dbUser, *dbPass, *dbName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Database ping failed: %v", err)
	}

	if err := InitDB(db); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Println("Database initialized successfully")

	server := NewRegistryServer(db)

	if *seed {
		if err := SeedBenchmarks(context.Background(), server, *seedShots); err != nil {
			log.Fatalf("Failed to seed benchmarks: %v", err)
		}
		log.Printf("🌱 Seeded %d benchmark artifacts", len(qec.IDs()))
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", *grpcPort))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer()
	// RegisterArtifactRegistryServer(grpcServer, server)

	log.Printf("🗄️ QEC Artifact Registry starting on port %d", *grpcPort)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
